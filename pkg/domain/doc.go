/*
Package domain contains the snapshot models shared by the bridge and its backends.

Every value here is a read-only, point-in-time view fetched from the controller.
Nothing in this package performs I/O, and nothing outside a backend adapter
mutates a snapshot: changes are made by issuing calls back to the controller.

# Key Entities

  - Device: A controllable or readable appliance with its capability values.
  - Zone: A room or floor, kept as a flat list with parent references.
  - Flow / AdvancedFlow: Two distinct automation-rule collections.
  - LogEntry: An insights log descriptor (identifier only, no time series).
*/
package domain

/*
Package homey defines the operation catalog exposed by the bridge.

Each operation pairs a descriptor (name, description, input schema) with a
handler composed of ports.Backend calls. Handlers read fresh snapshots on every
call and let backend errors bubble to the dispatcher, except for the
best-effort zone light batch, which logs and skips per-device failures.
*/
package homey

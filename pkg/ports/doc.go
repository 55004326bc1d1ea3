/*
Package ports defines the driven ports (interfaces) for the bridge core.

These interfaces decouple the operation handlers from the concrete controller
client, so the same catalog runs against the Homey Web API, an in-memory fake,
or anything else that honours the contract.

# Key Interfaces

  - Backend: Read and mutate devices, zones, flows and insights logs.
  - AdvancedFlowManager: Optional access to the advanced-flow collection.
  - AdvancedFlowSource: Optional accessor that hands out an AdvancedFlowManager.
  - Session: The lazily-established, shared handle to a Backend.
*/
package ports

// Package partymeta decodes party and party member presence meta into typed
// views.
//
// Party services publish state as a flat map of string keys to string
// values. Each key ends in a type tag ("Default:RegionId_s",
// "Default:LobbyState_j") that says how its value is encoded. A
// metastore.Store holds the raw map for one entity; PartyMeta and MemberMeta
// read it on demand and decode only the keys an accessor touches.
//
// Accessors distinguish three outcomes:
//   - a decoded value (ok == true)
//   - absence (ok == false, err == nil): the key is unset or holds a
//     documented "nothing" token such as None
//   - a *metakey.ParseError: the key is set but its value is malformed
//
// Key features:
//   - Typed keys bound to their codec (metakey.Key), generated from schema
//     structs
//   - Copy-on-write store with atomic merges and change subscriptions
//   - Asset path parsing for cosmetic identifiers
//   - Composite views (match state, zone instance, variants, map marker)
package partymeta

// Package gossip is the thread-safe contact-info table the forwarding
// sender consults to resolve a leader pubkey to its advertised TPU
// socket. It does not implement a gossip wire protocol; that is an
// external collaborator. What lives here is the guarded table itself —
// the read/write-locked map pattern pkg/dns's Resolver uses for service
// records, generalized here to (pubkey -> contact info) instead of
// (service name -> DNS records) — plus a Pruner that periodically evicts
// stale entries. Entries are written through Upsert; this package
// contains no push/pull updater of its own.
package gossip

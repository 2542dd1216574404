// Package forwarding is the client-transaction forwarding pipeline: it
// receives signed transactions, batches them, forwards them to the
// current and near-future slot leaders, and retries or drops them based
// on signature status and block height.
//
// Three cooperating long-lived goroutines share two pieces of guarded
// state (PendingPool and the ServiceInfo snapshot):
//
//   - the refresh loop re-fetches epoch info, the latest blockhash, and
//     the leader schedule every ServiceInfoRefreshInterval, rebuilding the
//     leader→TPU-address map from the gossip table;
//   - the receiver loop drains the inbound channel, deduplicates against
//     both its in-flight batch and PendingPool, and flushes a batch (by
//     size or by age) to the sender, then records what it sent into
//     PendingPool;
//   - the processor loop polls on a timer, fetches the current block
//     height and signature statuses for everything pending, and for each
//     transaction decides: drop (rooted, failed, or expired) or resend
//     (stalled past the retry interval, under its retry budget).
//
// A fourth goroutine the reference design describes — a synthetic
// transaction generator for load-testing — is an external collaborator
// with no component in this package; Service's three loops are the
// complete production pipeline.
//
// All three loops poll a shared atomic exit flag and a context for
// cooperative shutdown: a worker that hits an unrecoverable error sets
// exit before returning, and Service.Stop cancels the context and waits
// for all three to unwind.
package forwarding

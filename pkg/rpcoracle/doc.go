// Package rpcoracle wraps a Solana JSON-RPC client
// (github.com/gagliardetto/solana-go/rpc) behind the narrow RPCOracle
// interface pkg/forwarding consumes: epoch info, latest blockhash, leader
// schedule, block height, and signature statuses. Everything else the
// upstream RPC client exposes (account info, program queries, transaction
// simulation) is out of scope — forwarding only ever needs these five
// calls.
package rpcoracle

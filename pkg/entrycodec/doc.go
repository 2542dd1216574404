// Package entrycodec implements blockstore.EntryDecoder over the wire
// format entries are written in: a bincode-style length-prefixed vector
// of (num_hashes, hash, transactions) records, decoded with
// github.com/gagliardetto/binary the same way the reference blockstore
// reader decodes its deshredded payload (bin.NewBinDecoder(payload)
// .Decode(&entries)).
package entrycodec

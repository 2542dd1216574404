package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cuemby/ledgerd/pkg/blockstore"
	"github.com/cuemby/ledgerd/pkg/entrycodec"
	"github.com/cuemby/ledgerd/pkg/kvstore"
	"github.com/cuemby/ledgerd/pkg/metrics"
	"github.com/cuemby/ledgerd/pkg/types"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "ledgerctl",
	Short:   "Read-only inspection CLI for a ledgerd data directory",
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("ledgerctl version %s\nCommit: %s\n", Version, Commit))
	rootCmd.PersistentFlags().String("data-dir", "./data", "Path to the ledger data directory")

	rootCmd.AddCommand(getBlockCmd)
	rootCmd.AddCommand(getSignatureStatusCmd)
	rootCmd.AddCommand(isRootCmd)
}

// openReader opens the same on-disk store ledgerd serves from, read-only
// in spirit: this CLI never calls a mutating Reader method.
func openReader(cmd *cobra.Command) (*blockstore.Reader, *kvstore.Store, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	store, err := kvstore.Open(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", dataDir, err)
	}
	reader := blockstore.NewReader(store, passthroughShredCodec{}, passthroughDeshredder{}, entrycodec.New(), metrics.ReaderCounters{})
	return reader, store, nil
}

var getBlockCmd = &cobra.Command{
	Use:   "get-block SLOT",
	Short: "Print the transactions and metadata for a confirmed slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlot(args[0])
		if err != nil {
			return err
		}

		reader, store, err := openReader(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		block, err := reader.GetCompleteBlockWithEntries(slot, false, false, false)
		if err != nil {
			return fmt.Errorf("get-block %d: %w", slot, err)
		}

		fmt.Printf("Slot: %d\n", slot)
		fmt.Printf("Blockhash: %s\n", block.Blockhash)
		fmt.Printf("Previous Blockhash: %s\n", block.PreviousBlockhash)
		if block.ParentSlot != nil {
			fmt.Printf("Parent Slot: %d\n", *block.ParentSlot)
		}
		if block.BlockHeight != nil {
			fmt.Printf("Block Height: %d\n", *block.BlockHeight)
		}
		if block.BlockTime != nil {
			fmt.Printf("Block Time: %d\n", *block.BlockTime)
		}
		fmt.Printf("Transactions: %d\n", len(block.Transactions))
		for i, tx := range block.Transactions {
			status := "ok"
			if !tx.Meta.Succeeded() {
				status = string(tx.Meta.Err)
			}
			sig := ""
			if len(tx.Transaction.Signatures) > 0 {
				sig = tx.Transaction.Signatures[0].String()
			}
			fmt.Printf("  [%d] %s fee=%d status=%s\n", i, sig, tx.Meta.Fee, status)
		}
		return nil
	},
}

var getSignatureStatusCmd = &cobra.Command{
	Use:   "get-signature-status SIGNATURE",
	Short: "Look up the slot and execution status of a transaction signature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sig, err := types.SignatureFromBase58(args[0])
		if err != nil {
			return fmt.Errorf("invalid signature: %w", err)
		}

		reader, store, err := openReader(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		slot, meta, found, rowsScanned, err := reader.GetTransactionStatus(sig, nil)
		if err != nil {
			return fmt.Errorf("get-signature-status: %w", err)
		}
		if !found {
			fmt.Println("not found")
			return nil
		}

		status := "ok"
		if !meta.Succeeded() {
			status = string(meta.Err)
		}
		fmt.Printf("Slot: %d\n", slot)
		fmt.Printf("Status: %s\n", status)
		fmt.Printf("Fee: %d\n", meta.Fee)
		fmt.Printf("Status rows scanned: %d\n", rowsScanned)
		return nil
	},
}

var isRootCmd = &cobra.Command{
	Use:   "is-root SLOT",
	Short: "Report whether a slot is rooted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlot(args[0])
		if err != nil {
			return err
		}

		reader, store, err := openReader(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		rooted, err := reader.IsRoot(slot)
		if err != nil {
			return fmt.Errorf("is-root %d: %w", slot, err)
		}
		fmt.Println(rooted)
		return nil
	},
}

func parseSlot(s string) (types.Slot, error) {
	var slot uint64
	if _, err := fmt.Sscanf(s, "%d", &slot); err != nil {
		return 0, fmt.Errorf("invalid slot %q: %w", s, err)
	}
	return types.Slot(slot), nil
}

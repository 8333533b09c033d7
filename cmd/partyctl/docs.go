package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
)

func newDocsCmd(e *env) *cobra.Command {
	docsCmd := &cobra.Command{
		Use:   "docs",
		Short: "Raw access to the document store",
		Long: `Raw access to the document store. Documents are printed and
accepted as relaxed MongoDB Extended JSON.`,
	}

	getCmd := &cobra.Command{
		Use:   "get <collection> <id>",
		Short: "Print a single document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := e.context(cmd)
			defer cancel()

			var doc bson.M
			if err := e.docs.GetDocument(ctx, args[0], args[1], &doc); err != nil {
				return fmt.Errorf("get %s/%s: %w", args[0], args[1], err)
			}

			return printDocument(cmd, doc)
		},
	}

	var merge bool
	setCmd := &cobra.Command{
		Use:   "set <collection> <id> <json>",
		Short: "Write a document, replacing it or merging fields with --merge",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc bson.M
			if err := bson.UnmarshalExtJSON([]byte(args[2]), false, &doc); err != nil {
				return fmt.Errorf("parse document: %w", err)
			}
			delete(doc, "_id")

			ctx, cancel := e.context(cmd)
			defer cancel()

			if err := e.docs.SetDocument(ctx, args[0], args[1], doc, merge); err != nil {
				return fmt.Errorf("set %s/%s: %w", args[0], args[1], err)
			}

			e.log.Info("document_written",
				slog.String("collection", args[0]),
				slog.String("id", args[1]),
				slog.Bool("merge", merge),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%s/%s written\n", args[0], args[1])

			return nil
		},
	}
	setCmd.Flags().BoolVar(&merge, "merge", false, "update only the given fields")

	var sortKey string
	listCmd := &cobra.Command{
		Use:   "list <collection>",
		Short: "Print every document of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := e.context(cmd)
			defer cancel()

			var docs []bson.M
			if err := e.docs.ListCollection(ctx, args[0], sortKey, &docs); err != nil {
				return fmt.Errorf("list %s: %w", args[0], err)
			}

			for _, d := range docs {
				if err := printDocument(cmd, d); err != nil {
					return err
				}
			}

			return nil
		},
	}
	listCmd.Flags().StringVar(&sortKey, "sort", "", "sort ascending by this field")

	docsCmd.AddCommand(getCmd, setCmd, listCmd)

	return docsCmd
}

func printDocument(cmd *cobra.Command, doc bson.M) error {
	raw, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(raw))

	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/marcelsud/library-console/catalog"
	"github.com/spf13/cobra"
)

/* Os comandos usam o mesmo serviço da API: leituras passam pelo cache e pelo fallback,
 * escritas invalidam o cache. Output is JSON so it can be piped.
 */

func newRootCmd(svc catalog.UseCase, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "library-console",
		Short:         "Manage books, authors and genres of the library catalog",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)
	root.AddCommand(
		listCmd(svc),
		getCmd(svc),
		createCmd(svc),
		updateCmd(svc),
		deleteCmd(svc),
		statsCmd(svc),
	)
	return root
}

func listCmd(svc catalog.UseCase) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:       "list <books|authors|genres>",
		Short:     "List a collection",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"books", "authors", "genres"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			switch kind {
			case catalog.Books:
				all, err := svc.Books(ctx)
				if err != nil {
					return userError(err)
				}
				return printJSON(cmd, catalog.FilterBooks(all, search))
			case catalog.Authors:
				all, err := svc.Authors(ctx)
				if err != nil {
					return userError(err)
				}
				return printJSON(cmd, catalog.FilterAuthors(all, search))
			default:
				all, err := svc.Genres(ctx)
				if err != nil {
					return userError(err)
				}
				return printJSON(cmd, catalog.FilterGenres(all, search))
			}
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter the list by a search term")
	return cmd
}

func getCmd(svc catalog.UseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "get <books|authors|genres> <id>",
		Short: "Show one record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parseTarget(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			var v interface{}
			switch kind {
			case catalog.Books:
				v, err = svc.Book(ctx, id)
			case catalog.Authors:
				v, err = svc.Author(ctx, id)
			default:
				v, err = svc.Genre(ctx, id)
			}
			if err != nil {
				return userError(err)
			}
			return printJSON(cmd, v)
		},
	}
}

func createCmd(svc catalog.UseCase) *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "create <books|authors|genres> --data <json>",
		Short: "Create a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			var created interface{}
			switch kind {
			case catalog.Books:
				var dto catalog.CreateBook
				if err = unmarshal(data, &dto); err == nil {
					created, err = svc.CreateBook(ctx, dto)
				}
			case catalog.Authors:
				var dto catalog.CreateAuthor
				if err = unmarshal(data, &dto); err == nil {
					created, err = svc.CreateAuthor(ctx, dto)
				}
			default:
				var dto catalog.CreateGenre
				if err = unmarshal(data, &dto); err == nil {
					created, err = svc.CreateGenre(ctx, dto)
				}
			}
			if err != nil {
				return fmt.Errorf("%s", catalog.FailureMessage(kind, catalog.Create, err))
			}
			cmd.Println(catalog.SuccessMessage(kind, catalog.Create))
			return printJSON(cmd, created)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "record as JSON")
	cmd.MarkFlagRequired("data")
	return cmd
}

// updateCmd starts from the current record, so --data may carry only the fields to change.
func updateCmd(svc catalog.UseCase) *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "update <books|authors|genres> <id> --data <json>",
		Short: "Change fields of a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parseTarget(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			switch kind {
			case catalog.Books:
				var current catalog.BookView
				if current, err = svc.Book(ctx, id); err == nil {
					dto := current.Book().Update()
					if err = unmarshal(data, &dto); err == nil {
						err = svc.UpdateBook(ctx, id, dto)
					}
				}
			case catalog.Authors:
				var current catalog.Author
				if current, err = svc.Author(ctx, id); err == nil {
					dto := current.Update()
					if err = unmarshal(data, &dto); err == nil {
						err = svc.UpdateAuthor(ctx, id, dto)
					}
				}
			default:
				var current catalog.Genre
				if current, err = svc.Genre(ctx, id); err == nil {
					dto := current.Update()
					if err = unmarshal(data, &dto); err == nil {
						err = svc.UpdateGenre(ctx, id, dto)
					}
				}
			}
			if err != nil {
				return fmt.Errorf("%s", catalog.FailureMessage(kind, catalog.Update, err))
			}
			cmd.Println(catalog.SuccessMessage(kind, catalog.Update))
			return nil
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "fields to change as JSON")
	cmd.MarkFlagRequired("data")
	return cmd
}

func deleteCmd(svc catalog.UseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <books|authors|genres> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parseTarget(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			switch kind {
			case catalog.Books:
				err = svc.DeleteBook(ctx, id)
			case catalog.Authors:
				err = svc.DeleteAuthor(ctx, id)
			default:
				err = svc.DeleteGenre(ctx, id)
			}
			if err != nil {
				return fmt.Errorf("%s", catalog.FailureMessage(kind, catalog.Delete, err))
			}
			cmd.Println(catalog.SuccessMessage(kind, catalog.Delete))
			return nil
		},
	}
}

func statsCmd(svc catalog.UseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count books, authors and genres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := svc.Stats(cmd.Context())
			if err != nil {
				return userError(err)
			}
			return printJSON(cmd, st)
		},
	}
}

func parseKind(s string) (catalog.Kind, error) {
	kind := catalog.NewKind(s)
	if err := kind.Validate(); err != nil {
		return 0, fmt.Errorf("unknown collection %q: use books, authors or genres", s)
	}
	return kind, nil
}

func parseTarget(args []string) (catalog.Kind, int64, error) {
	kind, err := parseKind(args[0])
	if err != nil {
		return 0, 0, err
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, 0, fmt.Errorf("invalid id %q", args[1])
	}
	return kind, id, nil
}

func unmarshal(data string, v interface{}) error {
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return &catalog.ValidationError{Field: "data", Message: "Dados inválidos"}
	}
	return nil
}

func userError(err error) error {
	return fmt.Errorf("%s", catalog.Message(err))
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

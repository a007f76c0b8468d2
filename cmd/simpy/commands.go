package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xxxsen/simpy/client"
	"github.com/xxxsen/simpy/model"
	"github.com/xxxsen/simpy/timeutil"
)

func newTagsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "list tags with their counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			res, err := c.GetTags(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
}

func newRemoveTagCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-tag <tag>",
		Short: "remove a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			res, err := c.RemoveTag(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
}

func newRenameTagCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rename-tag <from> <to>",
		Short: "rename a tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			res, err := c.RenameTag(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
}

func newMergeTagsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "merge-tags <from1> <from2> <to>",
		Short: "merge two tags into a new one",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			res, err := c.MergeTags(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
}

func newSplitTagCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "split-tag <tag> <to1> <to2>",
		Short: "split a tag into two",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			res, err := c.SplitTag(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
}

func newLinksCmd(opts *rootOptions) *cobra.Command {
	var q client.LinkQuery
	var all bool
	cmd := &cobra.Command{
		Use:   "links",
		Short: "list links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := normalizeDates(&q); err != nil {
				return err
			}
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			var res client.Result[[]model.Link]
			if all {
				res, err = c.GetAllLinks(cmd.Context(), q)
			} else {
				res, err = c.GetLinks(cmd.Context(), q)
			}
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
	cmd.Flags().StringVar(&q.Q, "q", "", "search query")
	cmd.Flags().StringVar(&q.Date, "date", "", "links added on this day (yyyy-mm-dd)")
	cmd.Flags().StringVar(&q.AfterDate, "after", "", "links added after this day (yyyy-mm-dd)")
	cmd.Flags().StringVar(&q.BeforeDate, "before", "", "links added before this day (yyyy-mm-dd)")
	cmd.Flags().IntVar(&q.Limit, "limit", client.DefaultLimit, "maximum number of links")
	cmd.Flags().BoolVar(&all, "all", false, "return every matching link")
	return cmd
}

func newSaveLinkCmd(opts *rootOptions) *cobra.Command {
	var req client.SaveLinkRequest
	var public bool
	cmd := &cobra.Command{
		Use:   "save-link <title> <href>",
		Short: "save a link",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			req.Title, req.Href = args[0], args[1]
			req.AccessType = model.AccessPrivate
			if public {
				req.AccessType = model.AccessPublic
			}
			res, err := c.SaveLink(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
	cmd.Flags().BoolVar(&public, "public", false, "make the link public")
	cmd.Flags().StringVar(&req.Tags, "tags", "", "comma separated tags")
	cmd.Flags().StringVar(&req.Nickname, "nickname", "", "url nickname")
	cmd.Flags().StringVar(&req.Note, "note", "", "note attached to the link")
	return cmd
}

func newDeleteLinkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-link <href>",
		Short: "delete a link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			res, err := c.DeleteLink(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
}

func newNotesCmd(opts *rootOptions) *cobra.Command {
	var q client.NoteQuery
	var all bool
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "list notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			var res client.Result[[]model.Note]
			if all {
				res, err = c.GetAllNotes(cmd.Context(), q)
			} else {
				res, err = c.GetNotes(cmd.Context(), q)
			}
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
	cmd.Flags().StringVar(&q.Q, "q", "", "search query")
	cmd.Flags().IntVar(&q.Limit, "limit", client.DefaultLimit, "maximum number of notes")
	cmd.Flags().BoolVar(&all, "all", false, "return every matching note")
	return cmd
}

func newSaveNoteCmd(opts *rootOptions) *cobra.Command {
	var req client.SaveNoteRequest
	cmd := &cobra.Command{
		Use:   "save-note <title>",
		Short: "save a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			req.Title = args[0]
			res, err := c.SaveNote(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
	cmd.Flags().StringVar(&req.Tags, "tags", "", "comma separated tags")
	cmd.Flags().StringVar(&req.Description, "description", "", "note body")
	return cmd
}

func newDeleteNoteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-note <note-id>",
		Short: "delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			res, err := c.DeleteNote(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
}

func newTopicsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "list topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			res, err := c.GetTopics(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
}

func newTopicCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "topic <id>",
		Short: "show one topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			res, err := c.GetTopic(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
}

func newWatchlistsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watchlists",
		Short: "list watchlists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			res, err := c.GetWatchlists(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
}

func newWatchlistCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watchlist <id>",
		Short: "show one watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			res, err := c.GetWatchlist(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}
}

// normalizeDate accepts yyyy-mm-dd or a UTC timestamp and returns the day in
// the form the service filters on.
func normalizeDate(flag, value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if t, err := timeutil.ParseDate(value); err == nil {
		return timeutil.FormatDate(t), nil
	}
	if t, err := timeutil.ParseUTC(value); err == nil {
		return timeutil.FormatDate(t), nil
	}
	return "", fmt.Errorf("invalid --%s %q: want %s or %s", flag, value, timeutil.DateLayout, timeutil.UTCLayout)
}

func normalizeDates(q *client.LinkQuery) error {
	var err error
	if q.Date, err = normalizeDate("date", q.Date); err != nil {
		return err
	}
	if q.AfterDate, err = normalizeDate("after", q.AfterDate); err != nil {
		return err
	}
	if q.BeforeDate, err = normalizeDate("before", q.BeforeDate); err != nil {
		return err
	}
	return nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

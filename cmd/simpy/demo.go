package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/simpy/client"
	"github.com/xxxsen/simpy/model"
	"github.com/xxxsen/simpy/timeutil"
)

const (
	demoLinkNote = "This is the best Go bookmarking client. Let's try これは日本語のテキストです。読めますか？"
	demoNoteBody = "This is a note description with Iñtërnâtiônàlizætiøn これは日本語のテキストです。"
)

type demoOptions struct {
	mutate   bool
	interval time.Duration
}

type demoStep struct {
	name string
	run  func(ctx context.Context) (any, error)
}

func newDemoCmd(opts *rootOptions) *cobra.Command {
	demo := &demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo <username> <password> [topicId] [watchlistId]",
		Short: "exercise the read calls against a live account",
		Args:  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.username, opts.password = args[0], args[1]
			topicID, watchlistID := -1, -1
			var err error
			if len(args) > 2 {
				if topicID, err = parseID(args[2]); err != nil {
					return err
				}
			}
			if len(args) > 3 {
				if watchlistID, err = parseID(args[3]); err != nil {
					return err
				}
			}
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Using: %s at %s\n", args[0], timeutil.FormatUTC(time.Now()))
			return runDemo(cmd.Context(), cmd.OutOrStdout(), demoSteps(c, demo.mutate, topicID, watchlistID), demo.interval)
		},
	}
	cmd.Flags().BoolVar(&demo.mutate, "mutate", false, "also save, rename, merge and split on the account")
	cmd.Flags().DurationVar(&demo.interval, "interval", time.Second, "pause between calls")
	return cmd
}

func demoSteps(c *client.Client, mutate bool, topicID, watchlistID int) []demoStep {
	tags := demoStep{name: "getTags", run: func(ctx context.Context) (any, error) {
		return value(c.GetTags(ctx))
	}}
	steps := []demoStep{
		tags,
		{name: "getLinks", run: func(ctx context.Context) (any, error) {
			return value(c.GetLinks(ctx, client.LinkQuery{}))
		}},
		{name: "getLinks date=2004-05-10", run: func(ctx context.Context) (any, error) {
			return value(c.GetLinks(ctx, client.LinkQuery{Date: "2004-05-10"}))
		}},
		{name: "getTopics", run: func(ctx context.Context) (any, error) {
			return value(c.GetTopics(ctx))
		}},
	}
	if topicID >= 0 {
		steps = append(steps, demoStep{name: "getTopic", run: func(ctx context.Context) (any, error) {
			return value(c.GetTopic(ctx, topicID))
		}})
	}
	steps = append(steps, demoStep{name: "getNotes", run: func(ctx context.Context) (any, error) {
		return value(c.GetNotes(ctx, client.NoteQuery{}))
	}})
	if mutate {
		steps = append(steps,
			demoStep{name: "saveLink", run: func(ctx context.Context) (any, error) {
				return value(c.SaveLink(ctx, client.SaveLinkRequest{
					Title:      "simpy-go",
					Href:       "https://github.com/xxxsen/simpy",
					AccessType: model.AccessPrivate,
					Tags:       "go bookmarks",
					Note:       demoLinkNote,
				}))
			}},
			demoStep{name: "saveNote", run: func(ctx context.Context) (any, error) {
				return value(c.SaveNote(ctx, client.SaveNoteRequest{
					Title:       "Title",
					Tags:        "she he we be",
					Description: demoNoteBody,
				}))
			}},
			demoStep{name: "renameTag blog -> snorg", run: func(ctx context.Context) (any, error) {
				return value(c.RenameTag(ctx, "blog", "snorg"))
			}},
			tags,
			demoStep{name: "mergeTags snorg + go -> snava", run: func(ctx context.Context) (any, error) {
				return value(c.MergeTags(ctx, "snorg", "go", "snava"))
			}},
			tags,
			demoStep{name: "splitTag snava -> blog + go", run: func(ctx context.Context) (any, error) {
				return value(c.SplitTag(ctx, "snava", "blog", "go"))
			}},
			tags,
		)
	}
	steps = append(steps, demoStep{name: "getWatchlists", run: func(ctx context.Context) (any, error) {
		return value(c.GetWatchlists(ctx))
	}})
	if watchlistID >= 0 {
		steps = append(steps, demoStep{name: "getWatchlist", run: func(ctx context.Context) (any, error) {
			return value(c.GetWatchlist(ctx, watchlistID))
		}})
	}
	return steps
}

func value[T any](res client.Result[T], err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// runDemo executes the steps in order and pauses between them so the
// service's rate limit is not hit.
func runDemo(ctx context.Context, w io.Writer, steps []demoStep, interval time.Duration) error {
	for i, step := range steps {
		if i > 0 && interval > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
		}
		fmt.Fprintf(w, "\n----- %s -----\n\n", step.name)
		v, err := step.run(ctx)
		if err != nil {
			logutil.GetLogger(ctx).Error("demo step failed", zap.String("step", step.name), zap.Error(err))
			return fmt.Errorf("%s: %w", step.name, err)
		}
		if err := writeJSON(w, v); err != nil {
			return err
		}
	}
	return nil
}

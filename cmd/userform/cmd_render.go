package main

import (
	"fmt"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-userform/pkg/renderers/vanilla"
	"github.com/goliatone/go-userform/pkg/userform"
)

type renderFlags struct {
	open      bool
	submit    bool
	dismiss   bool
	action    string
	templates string
	values    map[string]string
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	rf := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a form snapshot as HTML",
		Example: `  userform render --open --set username=ada --set phone=123 --submit
  userform render --open --set email=nope --submit --dismiss`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(flags, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			events, err := rf.events()
			if err != nil {
				return err
			}
			session := userform.NewSession(a.reducer)
			session.DispatchAll(events...)

			r, err := vanilla.New(
				vanilla.WithTemplatesDir(rf.templates),
				vanilla.WithAction(rf.action),
				vanilla.WithTheme(&theme.RendererConfig{
					Theme:   a.cfg.Render.Theme,
					Variant: a.cfg.Render.Variant,
				}),
			)
			if err != nil {
				return err
			}
			out, err := r.Render(cmd.Context(), session.State())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().BoolVar(&rf.open, "open", false, "open the modal")
	cmd.Flags().BoolVar(&rf.submit, "submit", false, "press submit after setting values")
	cmd.Flags().BoolVar(&rf.dismiss, "dismiss", false, "close the error popup after submitting")
	cmd.Flags().StringVar(&rf.action, "action", "", "form action attribute")
	cmd.Flags().StringVar(&rf.templates, "templates", "", "directory overriding the embedded templates")
	cmd.Flags().StringToStringVar(&rf.values, "set", nil, "field=value pairs (username, email, dob, phone)")
	return cmd
}

// events turns the flags into the event sequence a user would produce.
func (rf *renderFlags) events() ([]userform.Event, error) {
	var events []userform.Event
	if rf.open {
		events = append(events, userform.OpenEvent{})
	}
	for _, id := range userform.Fields() {
		value, ok := rf.values[string(id)]
		if !ok {
			continue
		}
		events = append(events, userform.ChangeEvent{Field: id, Value: value})
	}
	for raw := range rf.values {
		if _, err := userform.ParseFieldID(raw); err != nil {
			return nil, err
		}
	}
	if rf.submit {
		events = append(events, userform.SubmitEvent{})
	}
	if rf.dismiss {
		events = append(events, userform.DismissErrorEvent{})
	}
	return events, nil
}

package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/faultmgr/fmcli/internal/render"
	"github.com/faultmgr/fmcli/internal/resource"
)

// newRenderCmd creates the "render" command: it reads a YAML list of
// attribute maps and displays it the way the API list commands do, as a
// sorted, word-wrapped table paged to the terminal.
func newRenderCmd() *cobra.Command {
	var (
		fields       []string
		labels       []string
		sortBy       string
		reverse      bool
		noPaging     bool
		noWrapFields []string
		nowrap       bool
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a resource list file as a table",
		Long:  "Render reads a YAML list of attribute maps and displays it as a sorted, word-wrapped, terminal-paged table.",
		Example: `  # Render with derived columns
  fmcli render alarms.yaml

  # Pick columns and sort order explicitly
  fmcli render alarms.yaml --fields alarm_id,severity,reason_text --sort-by severity`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			objs, err := loadResources(args[0])
			if err != nil {
				return err
			}

			flds := fields
			if len(flds) == 0 {
				flds = defaultFields(objs)
			}
			lbls := labels
			if len(lbls) == 0 {
				lbls = lo.Map(flds, func(f string, _ int) string { return labelForField(f) })
			}
			if len(lbls) != len(flds) {
				return fmt.Errorf("got %d labels for %d fields", len(lbls), len(flds))
			}

			opts := render.Options{
				Reverse:      reverse,
				NoWrapFields: noWrapFields,
				NoPaging:     noPaging,
				NoWrap:       nowrap,
				PromptIn:     cmd.InOrStdin(),
				PromptOut:    cmd.ErrOrStderr(),
				Logger:       &logger,
			}
			if sortBy != "" {
				i := lo.IndexOf(flds, sortBy)
				if i < 0 {
					return fmt.Errorf("unknown sort field %q", sortBy)
				}
				opts.SortKey = render.SortBy(i)
			}
			out := cmd.OutOrStdout()
			opts.Printer = func(s string) { fmt.Fprintln(out, s) }

			logger.Debug().
				Int("resources", len(objs)).
				Strs("fields", flds).
				Msg("rendering resource list")
			render.PrintLongList(objs, flds, lbls, opts)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to display, in order")
	cmd.Flags().StringSliceVar(&labels, "labels", nil, "column headers (default: title-cased field names)")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "field to sort by")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "sort descending")
	cmd.Flags().BoolVar(&noPaging, "no-paging", false, "print everything without prompts")
	cmd.Flags().StringSliceVar(&noWrapFields, "no-wrap-fields", nil, "fields that must never be wrapped")
	AddNoWrapFlag(cmd, &nowrap)

	return cmd
}

// loadResources reads a YAML file holding a list of attribute maps.
func loadResources(path string) ([]resource.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resource file: %w", err)
	}
	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing resource file: %w", err)
	}

	objs := make([]resource.Resource, 0, len(raw))
	for _, m := range raw {
		obj := make(resource.MapResource, len(m))
		for k, v := range m {
			obj[k] = fmt.Sprint(v)
		}
		objs = append(objs, obj)
	}
	return objs, nil
}

// defaultFields derives the display fields from the first object's
// attribute names, sorted for a stable column order.
func defaultFields(objs []resource.Resource) []string {
	if len(objs) == 0 {
		return nil
	}
	m, ok := objs[0].(resource.MapResource)
	if !ok {
		return nil
	}
	fields := lo.Keys(m)
	sort.Strings(fields)
	return fields
}

// labelForField turns an attribute name into a column header:
// "entity_instance_id" becomes "Entity Instance Id".
func labelForField(field string) string {
	words := strings.Split(field, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

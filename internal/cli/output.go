package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/cli-runtime/pkg/printers"
	"sigs.k8s.io/yaml"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// outputOptions holds the output flags shared by listing commands
type outputOptions struct {
	format    string
	noHeaders bool
}

func (o *outputOptions) addFlags(cmd *cobra.Command, defaultFormat string, formats ...string) {
	cmd.Flags().StringVarP(&o.format, "output", "o", defaultFormat, fmt.Sprintf("Output format. One of: (%s)", strings.Join(formats, ", ")))
	for _, f := range formats {
		if f == outputTable {
			cmd.Flags().BoolVar(&o.noHeaders, "no-headers", false, "When using the table output format, don't print headers")
			break
		}
	}
}

// print writes obj as JSON or YAML, or builds and prints a table
func (o *outputOptions) print(out io.Writer, obj any, table func() *metav1.Table) error {
	switch o.format {
	case outputJSON, outputYAML:
		return printObject(obj, out, o.format)
	case outputTable:
		if table == nil {
			return fmt.Errorf("unsupported output format: %s", o.format)
		}
		return printTable(table(), out, o.noHeaders)
	default:
		return fmt.Errorf("unsupported output format: %s", o.format)
	}
}

// printTable prints a table using the table printer
func printTable(table *metav1.Table, out io.Writer, noHeaders bool) error {
	printer := printers.NewTablePrinter(printers.PrintOptions{
		NoHeaders: noHeaders,
	})

	return printer.PrintObj(table, out)
}

// printObject prints data in JSON or YAML format
func printObject(obj any, out io.Writer, format string) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case outputJSON:
		data, err = json.MarshalIndent(obj, "", "    ")
		data = append(data, '\n')
	case outputYAML:
		data, err = yaml.Marshal(obj)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	_, err = out.Write(data)
	return err
}

func newTable(columns []metav1.TableColumnDefinition, rows []metav1.TableRow) *metav1.Table {
	return &metav1.Table{
		TypeMeta: metav1.TypeMeta{
			Kind:       "Table",
			APIVersion: "meta.k8s.io/v1",
		},
		ColumnDefinitions: columns,
		Rows:              rows,
	}
}

func valueOrNone(s string) string {
	if s == "" {
		return "<none>"
	}
	return s
}

package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"locr/internal/languages"

	"github.com/spf13/cobra"
)

// newLanguageCmd 创建 language 子命令。
// 命令用于展示内置语言、展示分类以及对应文件后缀。
func newLanguageCmd(registry *languages.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "language",
		Short: "展示已支持语言及后缀",
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "LANGUAGE\tCATEGORY\tEXTENSIONS"); err != nil {
				return err
			}

			for _, profile := range registry.Profiles() {
				if _, err := fmt.Fprintf(
					writer,
					"%s\t%s\t%s\n",
					profile.Name,
					profile.Category,
					strings.Join(profile.Extensions, ", "),
				); err != nil {
					return err
				}
			}

			return writer.Flush()
		},
	}
}

/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/lexivy/internal/adapter/dataset"
)

const (
	importInputKey  = "dataset.import.input"
	importOutputKey = "dataset.import.output"
	importSheetKey  = "dataset.import.sheet"
	importStartKey  = "dataset.import.start_row"
)

// importCmd converts a word-list spreadsheet into the vocabulary JSON
// dataset served by the API.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Convert a word-list spreadsheet into a vocabulary dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := viper.GetString(importInputKey)
		if input == "" {
			return fmt.Errorf("--input is required")
		}
		output := viper.GetString(importOutputKey)
		if output == "" {
			return fmt.Errorf("--output is required")
		}

		config := dataset.DefaultImportConfig()
		if sheet := viper.GetString(importSheetKey); sheet != "" {
			config.SheetName = sheet
		}
		if start := viper.GetInt(importStartKey); start > 0 {
			config.StartRow = start
		}

		words, err := dataset.ImportXLSX(input, config)
		if err != nil {
			return fmt.Errorf("import spreadsheet: %w", err)
		}

		raw, err := dataset.Marshal(words)
		if err != nil {
			return fmt.Errorf("encode dataset: %w", err)
		}
		if err := os.WriteFile(output, raw, 0o644); err != nil {
			return fmt.Errorf("write dataset: %w", err)
		}

		cmd.Printf("imported %d words into %s\n", len(words), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("input", "i", "", "spreadsheet file to import (.xlsx)")
	importCmd.Flags().StringP("output", "o", "", "vocabulary JSON file to write")
	importCmd.Flags().String("sheet", "", "sheet name (default Sheet1)")
	importCmd.Flags().Int("start-row", 0, "first data row, 1-based (default 2)")

	bindFlagToViper(importInputKey, importCmd.Flags().Lookup("input"))
	bindFlagToViper(importOutputKey, importCmd.Flags().Lookup("output"))
	bindFlagToViper(importSheetKey, importCmd.Flags().Lookup("sheet"))
	bindFlagToViper(importStartKey, importCmd.Flags().Lookup("start-row"))
}

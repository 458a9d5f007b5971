package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/cocanb/encode"
	"github.com/dhamidi/cocanb/format"
	"github.com/spf13/cobra"
)

const outputExt = ".cocanb"

func newEncodeCmd() *cobra.Command {
	var outputFormat string
	var verbatimTags bool
	var writeFile bool

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode text into Cocanb form",
		Long: `Encode text into Cocanb form and print the result.

If a file is provided, it is read and encoded.
If no file is provided, reads text from stdin.

Use -w to write the result next to the input as <file>.cocanb
(requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input io.Reader
			var filename string

			if len(args) == 0 {
				if writeFile {
					return fmt.Errorf("-w requires a file argument")
				}
				input = cmd.InOrStdin()
			} else {
				filename = args[0]
				f, err := os.Open(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				defer f.Close()
				input = f
			}

			result, err := encode.EncodeReader(bufio.NewReader(input), encode.WithVerbatimTagsEnabled(verbatimTags))
			if err != nil {
				if filename != "" {
					return fmt.Errorf("encode %s: %w", filename, err)
				}
				return fmt.Errorf("encode: %w", err)
			}
			log.Debugf("encoded %d separators", len(result.Separators))

			var out bytes.Buffer
			encoder, err := format.New(outputFormat, &out)
			if err != nil {
				return err
			}
			if err := encoder.Encode(result); err != nil {
				return fmt.Errorf("format: %w", err)
			}

			if writeFile {
				target := filename + outputExt
				log.Infof("writing %s", target)
				return os.WriteFile(target, out.Bytes(), 0644)
			}
			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format ("+strings.Join(format.Names, ", ")+")")
	cmd.Flags().BoolVar(&verbatimTags, "verbatim-tags", false, "copy text between < and > unchanged")
	cmd.Flags().BoolVarP(&writeFile, "write", "w", false, "write the result to <file>"+outputExt)

	return cmd
}

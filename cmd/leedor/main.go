package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"leedor/internal/cover"
	"leedor/internal/epub"
	"leedor/internal/render"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "leedor",
	Short: "Read EPUB books one chapter at a time",
	Long: `leedor renders chapters from an EPUB archive as self-contained HTML
fragments: every referenced image and stylesheet is inlined as a base64
data URI, so a fragment can be displayed without further access to the
archive.`,
	SilenceUsage: true,
}

var infoCmd = &cobra.Command{
	Use:   "info BOOK",
	Short: "Print package metadata and reading-order length",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := openBook(args[0])
		if err != nil {
			return err
		}

		md := book.Metadata()
		fmt.Printf("Title:      %s\n", md.Title)
		for _, c := range md.Creators {
			if c.Role != "" {
				fmt.Printf("Creator:    %s (%s)\n", c.Name, c.Role)
			} else {
				fmt.Printf("Creator:    %s\n", c.Name)
			}
		}
		if md.Language != "" {
			fmt.Printf("Language:   %s\n", md.Language)
		}
		if md.Identifier != "" {
			fmt.Printf("Identifier: %s\n", md.Identifier)
		}
		if md.Publisher != "" {
			fmt.Printf("Publisher:  %s\n", md.Publisher)
		}
		fmt.Printf("Documents:  %d\n", book.DocCount())
		if item, ok := book.FindCover(); ok {
			fmt.Printf("Cover:      %s (%s)\n", item.Href, item.MediaType)
		}
		return nil
	},
}

var tocCmd = &cobra.Command{
	Use:   "toc BOOK",
	Short: "Print the table of contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := openBook(args[0])
		if err != nil {
			return err
		}

		toc, err := book.TOC()
		if err != nil {
			return err
		}
		for i, entry := range toc {
			fmt.Printf("%3d  %-40s %s\n", i+1, entry.Text, entry.Href)
		}
		return nil
	},
}

var chapterCmd = &cobra.Command{
	Use:   "chapter BOOK INDEX",
	Short: "Render one chapter as a self-contained HTML fragment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid chapter index %q", args[1])
		}

		book, err := openBook(args[0])
		if err != nil {
			return err
		}

		html, err := book.Chapter(index)
		if err != nil {
			return err
		}
		logger.Debug("rendered chapter",
			zap.Int("index", index),
			zap.Int("bytes", len(html)))

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			fmt.Println(html)
			return nil
		}
		if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
			return err
		}
		logger.Info("wrote chapter", zap.String("path", output))
		return nil
	},
}

var textCmd = &cobra.Command{
	Use:   "text BOOK INDEX",
	Short: "Print a chapter as plain text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid chapter index %q", args[1])
		}

		book, err := openBook(args[0])
		if err != nil {
			return err
		}

		html, err := book.Chapter(index)
		if err != nil {
			return err
		}
		text, err := render.Text(html)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

var coverCmd = &cobra.Command{
	Use:   "cover BOOK",
	Short: "Extract the cover image as a thumbnail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := openBook(args[0])
		if err != nil {
			return err
		}

		data, mediaType, err := book.CoverBytes()
		if err != nil {
			return err
		}
		logger.Debug("found cover",
			zap.String("media-type", mediaType),
			zap.Int("bytes", len(data)))

		width, _ := cmd.Flags().GetInt("width")
		thumb, ext, err := cover.Thumbnail(data, width)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = "cover." + ext
		}
		if err := os.WriteFile(output, thumb, 0o644); err != nil {
			return err
		}
		logger.Info("wrote cover", zap.String("path", output))
		return nil
	},
}

func openBook(path string) (*epub.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return epub.Open(data)
}

func init() {
	chapterCmd.Flags().StringP("output", "o", "", "Write the fragment to a file instead of stdout")
	coverCmd.Flags().StringP("output", "o", "", "Output file path (default: cover.<ext>)")
	coverCmd.Flags().IntP("width", "w", 0, "Scale the cover down to this width (0 keeps the original size)")

	rootCmd.AddCommand(infoCmd, tocCmd, chapterCmd, textCmd, coverCmd)
}

func main() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

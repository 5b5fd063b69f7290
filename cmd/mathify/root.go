package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	mathify "github.com/riverfjs/mathify-go"
	"github.com/riverfjs/mathify-go/teximg"
	"github.com/riverfjs/mathify-go/texuni"
)

var (
	flagOutput       string
	flagConfig       string
	flagRenderer     string
	flagImageService string
	flagInline       []string
	flagDisplay      []string
	flagSkipTags     []string
	flagNamespace    string
	flagNoEnvs       bool
	flagPreserve     bool
)

var rootCmd = &cobra.Command{
	Use:   "mathify [file]",
	Short: "Render LaTeX math inside an HTML document",
	Long: `mathify scans an HTML document for LaTeX math delimited by \(...\),
\[...\] or $$...$$ and replaces each formula with rendered output.

Reads the named file, or stdin when no file is given. The input charset
is detected from the document; output is always UTF-8.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write result to file instead of stdout")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "TOML config file")
	rootCmd.Flags().StringVar(&flagRenderer, "renderer", "", "renderer: unicode, image or image-embed")
	rootCmd.Flags().StringVar(&flagImageService, "image-service", "", "formula image service base URL")
	rootCmd.Flags().StringArrayVar(&flagInline, "inline", nil, `inline delimiter pair "left,right" (repeatable)`)
	rootCmd.Flags().StringArrayVar(&flagDisplay, "display", nil, `display delimiter pair "left,right" (repeatable)`)
	rootCmd.Flags().StringSliceVar(&flagSkipTags, "skip-tags", nil, "tags never entered")
	rootCmd.Flags().StringVar(&flagNamespace, "namespace", "", "prefix for generated data-* attributes")
	rootCmd.Flags().BoolVar(&flagNoEnvs, "no-environments", false, `disable whole-run handling of \begin{ text`)
	rootCmd.Flags().BoolVar(&flagPreserve, "preserve-original", false, "keep original math source as an attribute")
}

func run(cmd *cobra.Command, args []string) error {
	s := defaultSettings()
	if flagConfig != "" {
		if err := loadSettings(flagConfig, &s); err != nil {
			return err
		}
	}
	applyFlags(cmd, &s)

	render, err := pickRenderer(s)
	if err != nil {
		return err
	}
	opts := s.options()
	if len(flagInline) > 0 {
		pairs, err := parsePairs(flagInline)
		if err != nil {
			return err
		}
		opts = append(opts, mathify.WithInlineDelimiters(pairs...))
	}
	if len(flagDisplay) > 0 {
		pairs, err := parsePairs(flagDisplay)
		if err != nil {
			return err
		}
		opts = append(opts, mathify.WithDisplayDelimiters(pairs...))
	}

	input := io.Reader(cmd.InOrStdin())
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	// 按文档声明的字符集转码到 UTF-8 再解析
	decoded, err := charset.NewReader(input, "text/html")
	if err != nil {
		return fmt.Errorf("detect charset: %w", err)
	}
	doc, err := html.Parse(decoded)
	if err != nil {
		return fmt.Errorf("parse html: %w", err)
	}

	if err := mathify.Render(doc, render, opts...); err != nil {
		return err
	}

	output := cmd.OutOrStdout()
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		output = f
	}
	return html.Render(output, doc)
}

// applyFlags 命令行旗标覆盖配置文件
func applyFlags(cmd *cobra.Command, s *settings) {
	if cmd.Flags().Changed("renderer") {
		s.Renderer = flagRenderer
	}
	if cmd.Flags().Changed("image-service") {
		s.ImageService = flagImageService
	}
	if cmd.Flags().Changed("skip-tags") {
		s.SkipTags = flagSkipTags
	}
	if cmd.Flags().Changed("namespace") {
		s.Namespace = flagNamespace
	}
	if cmd.Flags().Changed("no-environments") {
		s.Environments = !flagNoEnvs
	}
	if cmd.Flags().Changed("preserve-original") {
		s.Preserve = flagPreserve
	}
}

// pickRenderer 根据配置选择 RenderFunc
func pickRenderer(s settings) (mathify.RenderFunc, error) {
	switch s.Renderer {
	case "", "unicode":
		return texuni.Renderer(), nil
	case "image", "image-embed":
		c := teximg.NewClient()
		c.BaseURL = s.ImageService
		c.Embed = s.Renderer == "image-embed"
		return c.Render, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q, want unicode, image or image-embed", s.Renderer)
	}
}

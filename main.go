package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ByLCY/linedpaper/dsl"
	"github.com/ByLCY/linedpaper/geometry"
	"github.com/ByLCY/linedpaper/renderer"
	canvasrenderer "github.com/ByLCY/linedpaper/renderer/canvas"
	"github.com/ByLCY/linedpaper/ruling"
)

// options 汇总命令行参数。
type options struct {
	pages    int
	maxPages int
	title    string
	debug    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("生成 PDF 失败: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "linedpaper [flags] <input> <output.pdf>",
		Short: "根据线组定义生成横线、方格、斜线或法式格纸 PDF",
		Long: `input 可以是 YAML 定义（.yml / .yaml）或紧凑格式（其它扩展名，通常为 .ruling）。
每一页的内容相同。

紧凑格式示例：
    paper letter portrait {
      seyes y-spacing 2mm top-margin 30mm bottom-margin 20mm base-thickness 0.4pt base-color cmyk(0.02, 0.34, 0, 0.12) aux-thickness 0.1pt aux-color cmyk(0.02, 0.34, 0, 0.12)
      line start (30mm, far 0) end (30mm, 0) thickness 0.4pt color cmyk(0, 0.36, 0.26, 0.04)
    }`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(args[0], args[1], opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "已生成 PDF：%s\n", args[1])
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.pages, "num-pages", "n", 1, "输出页数")
	cmd.Flags().IntVar(&opts.maxPages, "max-pages", renderer.DefaultMaxPages, "允许的最大页数")
	cmd.Flags().StringVar(&opts.title, "title", "", "PDF 标题（默认为输入文件名）")
	cmd.Flags().StringVar(&opts.debug, "debug", "", "线段调试 JSON 输出路径")
	return cmd
}

// run 串联读取、展开与渲染；任何一步失败都不会写出 PDF。
func run(inputPath, outputPath string, opts options) error {
	if err := renderer.ValidatePageCount(opts.pages, opts.maxPages); err != nil {
		return err
	}

	def, err := load(inputPath)
	if err != nil {
		return err
	}

	result, err := ruling.Expand(def)
	if err != nil {
		return fmt.Errorf("生成线段失败: %w", err)
	}

	if opts.debug != "" {
		if err := writeDebug(result, opts.debug); err != nil {
			return err
		}
	}

	title := opts.title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	}
	var r renderer.Renderer = canvasrenderer.NewRenderer(canvasrenderer.Options{
		Title:    title,
		MaxPages: opts.maxPages,
	})
	pdfBytes, err := r.Render(result, opts.pages)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(outputPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return nil
}

// load 按扩展名选择 YAML 或紧凑格式解析定义文件。
func load(path string) (*geometry.GeometryDef, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开定义文件 %s: %w", path, err)
	}
	defer file.Close()

	var parse func(io.Reader) (*geometry.GeometryDef, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		parse = geometry.LoadYAML
	default:
		parse = dsl.Load
	}
	def, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("解析定义文件 %s 失败: %w", path, err)
	}
	return def, nil
}

func writeDebug(result *ruling.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := ruling.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

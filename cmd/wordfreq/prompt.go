// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wordfreq/pkg/types"
)

const bannerWidth = 50

// runPrompt is the interactive mode: it asks for one document path, analyzes
// it, and waits for Enter before exiting so a double-clicked console window
// stays open. Errors are printed rather than returned.
func runPrompt(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return runAnalyze(cmd, args)
	}

	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, strings.Repeat("=", bannerWidth))
	fmt.Fprintln(out, "英文文档词频统计工具")
	fmt.Fprintln(out, strings.Repeat("=", bannerWidth))
	fmt.Fprintln(out, "\n请将Word文档拖放到这个窗口中，然后按回车键")

	if rep, err := promptAndAnalyze(cmd, in, out); err != nil {
		fmt.Fprintf(out, "\n发生错误: %v\n", err)
	} else {
		fmt.Fprintf(out, "\n结果已保存到文件：%s\n", rep.ResultFile)
	}

	fmt.Fprintln(out, "\n按回车键退出程序...")
	if noWait, _ := cmd.Flags().GetBool("no-wait"); !noWait {
		in.ReadString('\n')
	}
	return nil
}

func promptAndAnalyze(cmd *cobra.Command, in *bufio.Reader, out io.Writer) (types.Report, error) {
	fmt.Fprint(out, "> ")
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return types.Report{}, errors.New("no document path given")
	}
	path := cleanDroppedPath(line)

	fmt.Fprintln(out, "\n正在处理文档...")

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return types.Report{}, err
	}
	p, closeFn, err := buildPipeline(cmd.Context(), cmd, cfg, out, []string{path})
	if err != nil {
		return types.Report{}, err
	}
	defer closeFn()

	return p.Analyze(cmd.Context(), path)
}

// cleanDroppedPath strips the line ending and the quotes and spaces a
// terminal adds around a dragged-in file path.
func cleanDroppedPath(line string) string {
	return strings.Trim(strings.TrimRight(line, "\r\n"), `" `)
}

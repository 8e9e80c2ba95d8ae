// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/wordfreq/internal/report"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCleanDroppedPath(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "plain", line: "/tmp/a.docx\n", want: "/tmp/a.docx"},
		{name: "quoted", line: "\"C:\\Users\\me\\essay.docx\"\r\n", want: "C:\\Users\\me\\essay.docx"},
		{name: "dragged with trailing space", line: "'/tmp/a b.docx' \n", want: "'/tmp/a b.docx'"},
		{name: "surrounding spaces and quotes", line: "  \" /tmp/x.docx \"  ", want: "/tmp/x.docx"},
		{name: "empty", line: "\n", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanDroppedPath(tt.line))
		})
	}
}

func TestPromptAnalyzesDocument(t *testing.T) {
	outDir := t.TempDir()
	doc := writeDoc(t, "essay.txt", "Cats chase mice. Cats sleep.")

	out, err := execute(t, "\""+doc+"\"\n", "--no-wait", "--no-history", "--output-dir", outDir)
	require.NoError(t, err)

	assert.Contains(t, out, strings.Repeat("=", 50)+"\n英文文档词频统计工具\n")
	assert.Contains(t, out, "请将Word文档拖放到这个窗口中，然后按回车键")
	assert.Contains(t, out, "正在处理文档...")
	assert.Contains(t, out, "高频词汇统计结果：")
	assert.Contains(t, out, "1\tcats           2\n")
	assert.Contains(t, out, "结果已保存到文件：")
	assert.Contains(t, out, "按回车键退出程序...")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	name, err := report.ParseFilename(entries[0].Name())
	require.NoError(t, err)
	assert.Equal(t, "essay", name.Base)
}

func TestPromptReportsErrorsAndExitsCleanly(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.docx")

	out, err := execute(t, missing+"\n", "--no-wait", "--no-history", "--output-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "\n发生错误: ")
	assert.NotContains(t, out, "结果已保存到文件")
	assert.Contains(t, out, "按回车键退出程序...")
}

func TestPromptWithoutInput(t *testing.T) {
	out, err := execute(t, "", "--no-wait", "--no-history")
	require.NoError(t, err)
	assert.Contains(t, out, "发生错误: no document path given")
}

func TestAnalyzeCommand(t *testing.T) {
	outDir := t.TempDir()
	good := writeDoc(t, "notes.md", "alpha beta alpha")
	bad := filepath.Join(t.TempDir(), "gone.docx")

	out, err := execute(t, "", "analyze", "-q", "--no-history", "--output-dir", outDir, good, bad)
	assert.ErrorContains(t, err, "1 document(s) failed analysis")
	assert.Contains(t, out, "analyzed: notes.md")
	assert.Contains(t, out, "failed:   gone.docx")
	assert.NotContains(t, out, "高频词汇统计结果：")
}

func TestStopwordsCommand(t *testing.T) {
	out, err := execute(t, "", "stopwords", "--stop-words", "Zebra")
	require.NoError(t, err)

	words := strings.Fields(out)
	assert.Contains(t, words, "the")
	assert.Contains(t, words, "zebra")
	assert.IsNonDecreasing(t, words)
}

func TestLoadConfigDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, defaultTopN, cfg.Analysis.TopN)
	assert.Equal(t, 2, cfg.Analysis.MinLength)
	assert.Equal(t, report.DefaultPrefix, cfg.Report.Prefix)
	assert.Equal(t, ".", cfg.Report.OutputDir)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, defaultTimeout, cfg.Extraction.HTTP.Timeout)
	assert.Equal(t, int64(defaultMaxFileSize), cfg.Extraction.MaxFileSize)
	assert.Equal(t, "wordfreq/"+version, cfg.Extraction.HTTP.UserAgent)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordfreq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
analysis:
  top_n: 10
  stop_words: [lorem]
report:
  prefix: freq
  formats: [text, json]
extraction:
  http:
    timeout: 5s
`), 0o644))

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Analysis.TopN)
	assert.Equal(t, []string{"lorem"}, cfg.Analysis.StopWords)
	assert.Equal(t, "freq", cfg.Report.Prefix)
	assert.Len(t, cfg.Report.Formats, 2)
	assert.Equal(t, "5s", cfg.Extraction.HTTP.Timeout.String())
}

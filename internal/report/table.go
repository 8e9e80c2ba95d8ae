// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/wordfreq/pkg/types"
)

const (
	tableTitle  = "高频词汇统计结果："
	tableHeader = "排名\t单词\t\t出现次数"

	// wordWidth is the column the word is left-aligned in.
	wordWidth = 15
)

var tableRule = strings.Repeat("-", 30)

// WriteTable renders the ranked words as the fixed-layout table used for
// both the result file and the console.
func WriteTable(w io.Writer, words []types.WordCount) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", tableTitle, tableHeader, tableRule); err != nil {
		return err
	}
	for i, wc := range words {
		if _, err := fmt.Fprintf(w, "%d\t%-*s%d\n", i+1, wordWidth, wc.Word, wc.Count); err != nil {
			return err
		}
	}
	return nil
}

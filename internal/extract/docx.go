// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// docxBody is the main document part inside a .docx package.
const docxBody = "word/document.xml"

// DocxExtractor reads Word (.docx) documents. Each top-level body paragraph
// becomes one run; paragraphs inside tables, text boxes, headers, and
// footers are not included.
type DocxExtractor struct{}

// Extract opens the .docx package at path and returns its body paragraphs.
func (DocxExtractor) Extract(_ context.Context, path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening Word document: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != docxBody {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", docxBody, err)
		}
		defer rc.Close()
		return parseDocxParagraphs(rc)
	}
	return nil, fmt.Errorf("not a Word document: %s missing", docxBody)
}

// parseDocxParagraphs streams WordprocessingML and collects the text of each
// w:body/w:p. Text comes from w:t elements inside runs (w:r), directly or
// through a w:hyperlink. Tabs and line breaks inside runs become "\t" and
// "\n".
func parseDocxParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		stack    []string
		paras    []string
		cur      strings.Builder
		inPara   bool
		paraBase int // stack depth just below the open w:p
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", docxBody, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if !inPara && name == "p" && len(stack) > 0 && stack[len(stack)-1] == "body" {
				inPara = true
				cur.Reset()
				stack = append(stack, name)
				paraBase = len(stack)
				continue
			}
			stack = append(stack, name)
			if inPara && isRunChild(stack[paraBase:]) {
				switch name {
				case "tab":
					cur.WriteByte('\t')
				case "br":
					if breakIsTextWrap(t) {
						cur.WriteByte('\n')
					}
				case "cr":
					cur.WriteByte('\n')
				case "noBreakHyphen":
					cur.WriteByte('-')
				}
			}

		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			if inPara && len(stack) == paraBase {
				paras = append(paras, cur.String())
				inPara = false
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if inPara && isRunText(stack[paraBase:]) {
				cur.Write(t)
			}
		}
	}

	return paras, nil
}

// isRunChild reports whether rel (the element path below w:p) names a
// direct child of a paragraph-level run.
func isRunChild(rel []string) bool {
	switch len(rel) {
	case 2:
		return rel[0] == "r"
	case 3:
		return rel[0] == "hyperlink" && rel[1] == "r"
	}
	return false
}

func isRunText(rel []string) bool {
	return isRunChild(rel) && rel[len(rel)-1] == "t"
}

// breakIsTextWrap reports whether a w:br is an ordinary line break. Page
// and column breaks carry no text.
func breakIsTextWrap(el xml.StartElement) bool {
	for _, a := range el.Attr {
		if a.Name.Local == "type" {
			return a.Value == "" || a.Value == "textWrapping"
		}
	}
	return true
}

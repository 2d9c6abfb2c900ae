package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"tripforge/utils"

	"github.com/ledongthuc/pdf"
)

const (
	// MaxUploadBytes bounds worst-case extraction latency.
	MaxUploadBytes = 10 << 20
	// MaxTextChars caps the text handed to the extraction service.
	MaxTextChars = 50000
)

// ExtractText pulls plain text out of an uploaded PDF, DOCX, or text
// file. The result is capped at MaxTextChars.
func ExtractText(filename string, data []byte) (string, error) {
	var text string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = pdfText(data)
	case ".docx":
		text, err = docxText(data)
	case ".txt", "":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: file is not valid text", utils.ErrParseFailure)
		}
		text = string(data)
	default:
		return "", fmt.Errorf("%w: unsupported file type %q", utils.ErrParseFailure, filepath.Ext(filename))
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: no text found in document", utils.ErrParseFailure)
	}
	return capText(text, MaxTextChars), nil
}

func capText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrParseFailure, err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// docxText reads word/document.xml out of the OOXML archive. Runs of
// <w:t> text are joined; each paragraph becomes one line.
func docxText(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: not a DOCX archive: %v", utils.ErrParseFailure, err)
	}

	var doc io.ReadCloser
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			doc, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("%w: %v", utils.ErrParseFailure, err)
			}
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("%w: DOCX has no document body", utils.ErrParseFailure)
	}
	defer doc.Close()

	var b strings.Builder
	decoder := xml.NewDecoder(doc)
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", utils.ErrParseFailure, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
			if t.Name.Local == "p" {
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

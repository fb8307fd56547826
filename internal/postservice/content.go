package postservice

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const wordsPerMinute = 200

// markdown renders post content. Raw HTML in the source is dropped.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
)

// imageLineRX matches a line holding nothing but a markdown image, with an optional title.
var imageLineRX = regexp.MustCompile(`^\s*!\[([^\]]*)\]\(\s*<?([^)\s>]+)>?(?:\s+"[^"]*")?\s*\)\s*$`)

// ParseBlocks splits markdown content into text and image blocks. An image becomes its
// own block only when it stands alone on a line outside a fenced code block; inline
// images stay part of the surrounding text.
func ParseBlocks(content string) []Block {
	var (
		blocks  []Block
		text    []string
		inFence bool
	)

	flush := func() {
		md := strings.TrimSpace(strings.Join(text, "\n"))
		text = text[:0]
		if md != "" {
			blocks = append(blocks, Block{Type: BlockText, Markdown: md})
		}
	}

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
		}

		if !inFence {
			if m := imageLineRX.FindStringSubmatch(line); m != nil {
				flush()
				blocks = append(blocks, Block{Type: BlockImage, Alt: m[1], Src: m[2]})
				continue
			}
		}

		text = append(text, line)
	}
	flush()

	return blocks
}

// RenderMarkdown converts markdown to HTML.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// ReadingTime estimates the minutes needed to read content, never less than one.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

func renderPost(p *Post) (*RenderedPost, error) {
	html, err := RenderMarkdown(p.Content)
	if err != nil {
		return nil, err
	}

	blocks := ParseBlocks(p.Content)
	for i := range blocks {
		if blocks[i].Type != BlockText {
			continue
		}
		blocks[i].HTML, err = RenderMarkdown(blocks[i].Markdown)
		if err != nil {
			return nil, err
		}
	}

	if blocks == nil {
		blocks = []Block{}
	}

	return &RenderedPost{
		Post:        p,
		ReadingTime: ReadingTime(p.Content),
		HTML:        html,
		Blocks:      blocks,
	}, nil
}

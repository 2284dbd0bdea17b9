package utils

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"html/template"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdownTTL 渲染结果缓存时间
const markdownTTL = 30 * time.Minute

var (
	mdParser = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	policy = bluemonday.UGCPolicy()
)

func init() {
	// Allow images
	policy.AllowImages()
	// Force links to open in new tab
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	policy.RequireNoReferrerOnLinks(true)
}

// RenderMarkdown converts user text (listing descriptions, comments) to sanitized HTML.
// Results are cached by content hash since the same text renders on every page view.
func RenderMarkdown(source string) template.HTML {
	if source == "" {
		return ""
	}

	sum := sha1.Sum([]byte(source))
	key := "md:" + hex.EncodeToString(sum[:])
	if cached, ok := GetCache().Get(key).(template.HTML); ok {
		return cached
	}

	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(source), &buf); err != nil {
		// Fallback: escape instead of trusting raw input
		return template.HTML(template.HTMLEscapeString(source))
	}

	sanitized := policy.SanitizeBytes(buf.Bytes())
	rendered := EnhanceHTMLContent(string(sanitized))
	GetCache().Set(key, rendered, markdownTTL)
	return rendered
}

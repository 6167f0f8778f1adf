package docblock

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSections(t *testing.T) {
	lines := []string{
		" @desc    Computes the invoice total",
		" @param   items : the invoice lines",
		" @param   rate : tax rate applied to each line",
		" @return  the total as a float",
	}
	html := Format(lines)

	assert.Contains(t, html, "<p>Description</p>")
	assert.Contains(t, html, "<p>Input parameters:</p>")
	assert.Contains(t, html, "<p>Output parameter:</p>")
	assert.Contains(t, html, "<li>   items : the invoice lines</li>")
}

func TestFormatOmitsEmptySections(t *testing.T) {
	html := Format([]string{" @param   value : the only thing documented"})

	assert.Contains(t, html, "<p>Input parameter:</p>")
	assert.NotContains(t, html, "Description")
	assert.NotContains(t, html, "Output")
}

func TestFormatContinuationStaysInOneBullet(t *testing.T) {
	lines := []string{
		" @param   config : the loaded settings",
		"          falls back to defaults when absent",
	}
	html := Format(lines)

	require.Equal(t, 1, strings.Count(html, "<li>"), "continuation must not open a new bullet")
	assert.Contains(t, html, "<p style='margin-left: 10px;'>          falls back to defaults when absent</p>")
}

func TestFormatDescriptionContinuation(t *testing.T) {
	lines := []string{
		" @desc first sentence",
		"       second sentence",
	}
	html := Format(lines)

	assert.Equal(t, 2, strings.Count(html, "<li>"))
}

func TestFormatOtherBucket(t *testing.T) {
	lines := []string{
		" @author someone",
		" trailing note",
	}
	html := Format(lines)

	assert.Contains(t, html, "<p> @author someone</p>")
	assert.Contains(t, html, "<p> trailing note</p>")
	assert.NotContains(t, html, "<ul>")
}

func TestFormatEmptyBlock(t *testing.T) {
	assert.Equal(t, "", Format(nil))
}

func TestMarkdownSections(t *testing.T) {
	lines := []string{
		" @desc    Computes the invoice total",
		" @param   items : the invoice lines",
		"          one entry per product",
		" @return  the total as a float",
	}
	md := Markdown(lines)

	parts := strings.Split(md, "\n\n")
	require.Len(t, parts, 3)
	assert.Equal(t, "**Description**\n- Computes the invoice total", parts[0])
	assert.Equal(t, "**Input parameter:**\n- items : the invoice lines\n  one entry per product", parts[1])
	assert.Equal(t, "**Output parameter:**\n- the total as a float", parts[2])
}

func TestMarkdownEmptyBlock(t *testing.T) {
	assert.Equal(t, "", Markdown(nil))
}

package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEllipticalTruncate(t *testing.T) {
	assert.Equal(t, "…", TruncateWithEllipsis("1 2 3", 0))
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 1))
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 2))
	assert.Equal(t, "1 2…", TruncateWithEllipsis("1 2 3", 3))
	assert.Equal(t, "1 2 3", TruncateWithEllipsis("1 2 3", 5))
}

func TestStripHtml(t *testing.T) {
	assert.Equal(t, "Hiking in Taiwan", StripHtml("<p>Hiking in <b>Taiwan</b></p>"))
	assert.Equal(t, "a & b", StripHtml("a &amp; b"))
	assert.Equal(t, "plain", StripHtml("plain"))
	assert.Equal(t, "", StripHtml("<script>alert(1)</script>"))
}

func TestGetHostName(t *testing.T) {
	host, err := GetHostName("https://genart.social/@twilliability")
	assert.Nil(t, err)
	assert.Equal(t, "genart.social", host)
}

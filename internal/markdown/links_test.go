package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractLinks_InlineLink(t *testing.T) {
	links := ExtractLinks([]byte("See [`Weapon`](Weapon.md) for details."))
	require.Equal(t, []Link{{Destination: "Weapon.md"}}, links)
}

func TestExtractLinks_IgnoresImagesAndAutoLinks(t *testing.T) {
	links := ExtractLinks([]byte("![Diagram](Diagram.md) <https://example.com/path>\n"))
	require.Empty(t, links)
}

func TestExtractLinks_ReferenceLinkUsesDefinition(t *testing.T) {
	src := []byte("See [API][ref].\n\n[ref]: api.md\n[unused]: other.md\n")
	links := ExtractLinks(src)
	require.Equal(t, []Link{{Destination: "api.md"}}, links)
}

func TestExtractLinks_SkipsInlineCodeAndCodeBlocks(t *testing.T) {
	src := []byte("" +
		"Inline code: `[Link](./ignored-inline.md)`\n" +
		"\n" +
		"```\n" +
		"[Link](./ignored-fence.md)\n" +
		"```\n" +
		"\n" +
		"Real: [OK](./real.md)\n")

	links := ExtractLinks(src)
	require.Equal(t, []Link{{Destination: "./real.md"}}, links)
}

func TestPageRefs(t *testing.T) {
	src := []byte("A [`Weapon`](Weapon.md) with [`Weapon:damage`](Weapon.md#damage).\n" +
		"Also [site](https://example.com/Item.md), [up](../Other.md), [img](x.png), [root](/Abs.md).\n" +
		"See [the shield][shield].\n\n[shield]: Shield.md#size\n")

	refs := PageRefs(src)
	require.Equal(t, []PageRef{
		{Page: "Weapon.md"},
		{Page: "Weapon.md", Anchor: "damage"},
		{Page: "Shield.md", Anchor: "size"},
	}, refs)
}

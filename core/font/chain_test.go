package font

import (
	"testing"

	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestAddPageAppendsAtTail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.font")
	defer teardown()
	//
	primary := continuousPage(t, "primary", 0x20, 0x7E, 1, 0)
	ext1 := continuousPage(t, "ext1", 0xA0, 0xFF, 1, 0)
	ext2 := continuousPage(t, "ext2", 0x100, 0x17F, 1, 0)
	ext3 := continuousPage(t, "ext3", 0x370, 0x3FF, 1, 0)
	assert.NoError(t, AddPage(ext1, primary))
	assert.NoError(t, AddPage(ext2, primary))
	// parent already carries two extensions; the third has to land at
	// the true tail
	assert.NoError(t, AddPage(ext3, primary))
	assert.Equal(t, []*Font{primary, ext1, ext2, ext3}, primary.Pages())
}

func TestAddPageNoOpAndErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.font")
	defer teardown()
	//
	page := continuousPage(t, "page", 0x20, 0x7E, 1, 0)
	assert.NoError(t, AddPage(page, nil), "nil parent is a no-op")
	assert.Error(t, AddPage(nil, page), "nil child cannot be linked")
	//
	err := AddPage(page, page)
	assert.Error(t, err, "linking a page to itself would build a cycle")
	assert.Equal(t, core.EINVALID, core.Code(err))
	//
	ext := continuousPage(t, "ext", 0xA0, 0xFF, 1, 0)
	assert.NoError(t, AddPage(ext, page))
	err = AddPage(ext, page)
	assert.Error(t, err, "page is already a chain member")
	assert.Nil(t, ext.NextPage())
}

func TestRemovePageSplicesMiddle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.font")
	defer teardown()
	//
	primary := continuousPage(t, "primary", 0x20, 0x7E, 1, 0)
	ext1 := continuousPage(t, "ext1", 0xA0, 0xFF, 1, 0)
	ext2 := continuousPage(t, "ext2", 0x100, 0x17F, 1, 0)
	assert.NoError(t, AddPage(ext1, primary))
	assert.NoError(t, AddPage(ext2, primary))
	//
	assert.NoError(t, RemovePage(ext1, primary))
	assert.Equal(t, []*Font{primary, ext2}, primary.Pages(),
		"pages after the removed one have to survive")
	assert.Nil(t, ext1.NextPage(), "spliced-out page must not keep chain links")
}

func TestRemovePageNotLinked(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.font")
	defer teardown()
	//
	primary := continuousPage(t, "primary", 0x20, 0x7E, 1, 0)
	stray := continuousPage(t, "stray", 0xA0, 0xFF, 1, 0)
	err := RemovePage(stray, primary)
	assert.Error(t, err, "removing an unlinked page has to fail, not walk forever")
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Equal(t, []*Font{primary}, primary.Pages())
}

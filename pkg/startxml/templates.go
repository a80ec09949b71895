package startxml

import (
	"strconv"
	"strings"
)

// Document templates surrounding the serialized groups. The placeholders are
// expanded at serialization time:
//
//	{width}   - the layout's group cell width
//	{options} - the layout's override-options text, inserted verbatim as
//	            extra attributes on DefaultLayoutOverride (empty when unset)
const (
	DefaultHeader = `<LayoutModificationTemplate Version="1" xmlns="http://schemas.microsoft.com/Start/2014/LayoutModification" xmlns:defaultlayout="http://schemas.microsoft.com/Start/2014/FullDefaultLayout" xmlns:start="http://schemas.microsoft.com/Start/2014/StartLayout">
  <LayoutOptions StartTileGroupCellWidth="{width}" />
  <DefaultLayoutOverride{options}>
    <StartLayoutCollection>
      <defaultlayout:StartLayout GroupCellWidth="{width}">`

	DefaultFooter = `      </defaultlayout:StartLayout>
    </StartLayoutCollection>
  </DefaultLayoutOverride>
</LayoutModificationTemplate>`
)

// expandTemplate fills the header/footer placeholders. The override-options
// text is never escaped or validated; it is the caller's responsibility to
// pass well-formed attribute text.
func expandTemplate(tmpl string, width int, overrideOptions string) string {
	opts := ""
	if overrideOptions != "" {
		opts = " " + overrideOptions
	}
	out := strings.ReplaceAll(tmpl, "{width}", strconv.Itoa(width))
	return strings.ReplaceAll(out, "{options}", opts)
}

package types

// EntityTextLink 默认的链接实体类型
const EntityTextLink = "text_link"

// Entity 表示纯文本中的一个链接区间（UTF-16 偏移）
type Entity struct {
	Type   string `json:"type" msgpack:"type"`
	Offset int    `json:"offset" msgpack:"offset"`
	Length int    `json:"length" msgpack:"length"`
	URL    string `json:"url,omitempty" msgpack:"url,omitempty"`
}

// End returns the UTF-16 offset right after the entity.
func (e Entity) End() int {
	return e.Offset + e.Length
}

// RenderConfig 渲染配置
type RenderConfig struct {
	// Mnemonics strips '&' markers from segment text.
	Mnemonics bool
	// Normalize applies Unicode NFC to the markup before scanning.
	Normalize bool
	// LogDiscards logs every dropped markup span.
	LogDiscards bool
	// LinkEntityType is the Type of produced entities.
	LinkEntityType string
	// KeepEmptyLinks emits zero-length entities for `<a></a>`.
	KeepEmptyLinks bool
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		LinkEntityType: EntityTextLink,
	}
}

// Clone returns a copy that can be modified without touching c.
func (c *RenderConfig) Clone() *RenderConfig {
	if c == nil {
		return DefaultRenderConfig()
	}
	clone := *c
	return &clone
}

// EntityType returns LinkEntityType, falling back to "text_link".
func (c *RenderConfig) EntityType() string {
	if c == nil || c.LinkEntityType == "" {
		return EntityTextLink
	}
	return c.LinkEntityType
}

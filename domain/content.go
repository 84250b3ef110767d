package domain

// SoftDeletable is content that hides itself behind a placeholder once its
// deletion flag is set. The raw content is never exposed for deleted items;
// presentation code must always go through EffectiveContent.
type SoftDeletable interface {
	EffectiveContent() string
}

var (
	_ SoftDeletable = Comment{}
	_ SoftDeletable = Reply{}
)

package tokens

type Result struct {
	Token Token
	Pos   Pos

	// bytes consumed since the previous token that are not part of Token
	Skipped    string
	SkippedPos Pos
}

package vanilla

// ChromeClass is a typed identifier for the semantic CSS classes the vanilla
// renderer emits.
type ChromeClass string

const (
	ClassForm    ChromeClass = "atk-form"
	ClassField   ChromeClass = "atk-field"
	ClassInput   ChromeClass = "atk-input"
	ClassLiteral ChromeClass = "atk-literal"
	ClassHint    ChromeClass = "atk-hint"
	ClassErrors  ChromeClass = "atk-errors"
	ClassHelp    ChromeClass = "atk-help"
)

package au3

// Send modes of AU3_Send.
const (
	sendKeys = 0 // interpret {KEY} and the !+^# modifiers
	sendRaw  = 1 // type the text as-is
)

// keyString wraps a key name in braces for AU3_Send.
func keyString(name string) string {
	return "{" + name + "}"
}

package console

// Console text shown to the user, one line each.
const (
	msgWelcome    = "Welcome to Package Express. Please follow the instructions below."
	msgTooHeavy   = "Package too heavy to be shipped via Package Express. Have a good day."
	msgTooBig     = "Package too big to be shipped via Package Express."
	msgTotal      = "Your estimated total for shipping this package is: "
	msgThankYou   = "Thank you!"
	msgErrorStart = "An error occurred: "
)

// promptFor returns the prompt asking for a field, e.g. "Please enter the package weight:".
func promptFor(name string) string {
	return "Please enter the package " + name + ":"
}

// invalidInput returns the message for an unparsable field, e.g. "Invalid weight input.".
func invalidInput(name string) string {
	return "Invalid " + name + " input."
}

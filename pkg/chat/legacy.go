package chat

// colorNames maps the 16 color codes to their JSON color names.
var colorNames = map[rune]string{
	'0': "black", '1': "dark_blue", '2': "dark_green", '3': "dark_aqua",
	'4': "dark_red", '5': "dark_purple", '6': "gold", '7': "gray",
	'8': "dark_gray", '9': "blue", 'a': "green", 'b': "aqua",
	'c': "red", 'd': "light_purple", 'e': "yellow", 'f': "white",
}

// isStyleCode reports whether c is a style modifier code (not a color,
// not reset).
func isStyleCode(c rune) bool {
	switch c {
	case 'k', 'l', 'm', 'n', 'o':
		return true
	}
	return false
}

func isResetCode(c rune) bool { return c == 'r' }

func isValidCode(c rune) bool {
	_, isColor := colorNames[c]
	return isColor || isStyleCode(c) || isResetCode(c)
}

// ParseLegacy parses s for in-band style codes introduced by control,
// producing the nested color/formatting JSON chat tree described in the
// legacy chat parser design: one color component per color run, nested
// formatting components per style change, text on the deepest component.
func ParseLegacy(s string, control rune) Message {
	root := Message{Text: ""}
	current := &root // the color component currently accumulating runs
	var styleStack []*Message

	// deepest returns the component text should currently append to: the
	// innermost open style component, or current if none are open.
	deepest := func() *Message {
		if len(styleStack) > 0 {
			return styleStack[len(styleStack)-1]
		}
		return current
	}

	runes := []rune(s)
	i := 0
	for i < len(runes) {
		if runes[i] == control && i+1 < len(runes) && isValidCode(runes[i+1]) {
			code := runes[i+1]
			i += 2
			switch {
			case isResetCode(code):
				current = &root
				styleStack = nil
			case isStyleCode(code):
				child := Message{Text: ""}
				applyStyle(&child, code)
				parent := deepest()
				parent.Extra = append(parent.Extra, child)
				styleStack = append(styleStack, &parent.Extra[len(parent.Extra)-1])
			default: // color code starts a new color component off the root
				color := Message{Text: "", Color: colorNames[code]}
				root.Extra = append(root.Extra, color)
				current = &root.Extra[len(root.Extra)-1]
				styleStack = nil
			}
			continue
		}
		if runes[i] == control && i+1 >= len(runes) {
			// trailing lone control char: emit literally
			deepest().Text += string(runes[i])
			i++
			continue
		}
		if runes[i] == control {
			// control char followed by a non-code: emit literally
			deepest().Text += string(runes[i])
			i++
			continue
		}

		start := i
		for i < len(runes) && !(runes[i] == control && i+1 < len(runes) && isValidCode(runes[i+1])) && runes[i] != control {
			i++
		}
		deepest().Text += string(runes[start:i])
	}
	return root
}

func applyStyle(m *Message, code rune) {
	switch code {
	case 'k':
		m.Obfuscated = true
	case 'l':
		m.Bold = true
	case 'm':
		m.Strikethrough = true
	case 'n':
		m.Underlined = true
	case 'o':
		m.Italic = true
	}
}

// FormatChatLine builds the "<name> > <message>" chat body with message's
// legacy style codes parsed, per the chat-broadcast wire format.
func FormatChatLine(name, message string, control rune) Message {
	prefix := Text(name + " > ")
	body := ParseLegacy(message, control)
	return Message{Text: "", Extra: []Message{prefix, body}}
}

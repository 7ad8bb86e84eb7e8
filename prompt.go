package asciiwiki

import "fmt"

// artPrompt builds the prompt for one art generation attempt. The model is
// asked for a single raw JSON object; fencing is tolerated at parse time
// regardless.
func artPrompt(req ArtRequest) string {
	directives := req.StyleDirectives
	if directives == "" {
		directives, _ = StyleDirectives(DefaultStyle)
	}
	return fmt.Sprintf(
		"Create ASCII art depicting %q. %s\n\n"+
			"Respond with a single raw JSON object and nothing else. Do not wrap "+
			"it in markdown fencing. The object must have an \"art\" string field "+
			"containing the ASCII art with \\n line breaks, and may have a "+
			"\"text\" string field with a one-sentence caption in %s.",
		req.Topic, directives, req.Language)
}

// definitionPrompt builds the prompt for the streamed definition.
func definitionPrompt(topic, language string) string {
	return fmt.Sprintf(
		"Write a concise encyclopedia-style definition of %q in %s. "+
			"At most two short paragraphs of plain prose. You may use light "+
			"markdown emphasis and bullet lists, but no headings and no code "+
			"blocks.",
		topic, language)
}

// randomWordPrompt builds the prompt for the single-shot random word call.
func randomWordPrompt(language string) string {
	return fmt.Sprintf(
		"Pick one interesting, concrete noun in %s that would make a good "+
			"encyclopedia lookup. Respond with only the word itself, nothing else.",
		language)
}

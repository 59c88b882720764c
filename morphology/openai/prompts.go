package openai

import (
	"encoding/json"
	"fmt"
)

const formsSchema = `{
  "type": "object",
  "properties": {
    "words": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "word": {"type": "string"},
          "forms": {"type": "array", "items": {"type": "string"}}
        },
        "required": ["word", "forms"],
        "additionalProperties": false
      }
    }
  },
  "required": ["words"],
  "additionalProperties": false
}`

const formsPromptTemplate = `List the inflected forms of each given word in the language with locale code %q and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
or acknowledgment. Start your response directly with the opening brace { and end with the closing brace }.
Your output must exactly follow this schema:

%s

Rules:
- Return exactly one entry per input word, in input order, with "word" copied verbatim.
- Forms are lowercase single words: plurals, singulars, verb tenses, participles, comparatives.
- Include the word itself among its forms.
- Do not include synonyms, translations, or compounds.

Example:
Input: ["kitchen", "run"]
Output:
{
  "words": [
    {"word":"kitchen","forms":["kitchen","kitchens"]},
    {"word":"run","forms":["run","runs","ran","running"]}
  ]
}`

func buildSystemPrompt(locale string) string {
	return fmt.Sprintf(formsPromptTemplate, locale, formsSchema)
}

// buildUserPrompt renders the words as a JSON array.
func buildUserPrompt(words []string) string {
	data, err := json.Marshal(words)
	if err != nil {
		// []string always marshals
		panic(err)
	}
	return string(data)
}

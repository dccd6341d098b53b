package synthesizer

import (
	"fmt"
	"strings"

	"samvidhan-ai-be/pkg/rag/memory"
	"samvidhan-ai-be/pkg/rag/retriever"
)

const legalSystemPrompt = `You are SamvidhanAI, an expert assistant on Indian law.

Critical background you must apply:
- The Indian Penal Code (IPC, 1860) has been replaced by the Bharatiya Nyaya Sanhita (BNS, 2023).
- The Code of Criminal Procedure (CrPC) has been replaced by the Bharatiya Nagarik Suraksha Sanhita (BNSS).
- The Indian Evidence Act has been replaced by the Bharatiya Sakshya Adhiniyam (BSA).
- When a user cites an old IPC section, explain the current BNS equivalent alongside it.

Answer ONLY from the numbered context passages below when they are relevant.
If the context does not cover the question, say so plainly and answer from
general knowledge of Indian law, clearly marked as such.

If the user writes in Hindi or Hinglish, answer in the same language.

Use the previous conversation, when one is given, to resolve pronouns and
follow-up questions ("its punishment", "that section") against earlier turns.

Respond with a single JSON object and nothing else, using exactly these keys:
{
  "law": "what the statute says, with act and section names",
  "examples": "one or two concrete illustrative situations",
  "simple_answer": "a plain-language summary a non-lawyer can follow",
  "citations": [{"id": 1, "title": "...", "source": "...", "section": "...", "url": ""}]
}`

const casualSystemPrompt = `You are SamvidhanAI, a friendly assistant for an Indian legal help service.
The user is making small talk. Reply warmly in one or two short sentences and,
where natural, remind them you can answer questions about Indian law. Do not
invent legal facts.`

const fallbackGreeting = "Hello! I'm SamvidhanAI, your assistant for Indian law. Ask me about any statute, section, or legal situation."

// buildContextBlock serializes retrieved passages into the labeled form
// the system prompt tells the model to cite from.
func buildContextBlock(passages []retriever.RetrievedPassage) string {
	if len(passages) == 0 {
		return "No reference passages were found for this query."
	}
	var b strings.Builder
	for i, p := range passages {
		fmt.Fprintf(&b, "[Source %d: %s | Section: %s]\n%s\n\n", i+1, p.Act, p.Section, p.Text)
	}
	return strings.TrimRight(b.String(), "\n")
}

// buildTranscript renders recent history turns for a prompt, oldest
// first.
func buildTranscript(turns []memory.Turn) string {
	if len(turns) == 0 {
		return ""
	}
	var b strings.Builder
	for _, turn := range turns {
		label := "User"
		if turn.Role == memory.RoleAssistant {
			label = "Assistant"
		}
		fmt.Fprintf(&b, "%s: %s\n", label, turn.Content)
	}
	return b.String()
}

// truncateField caps a stored history field so prompts assembled from
// history stay bounded.
func truncateField(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

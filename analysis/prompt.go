package analysis

import "fmt"

const systemPrompt = "You are an expert interview coach. Analyze the following interview transcript. " +
	"Identify the candidate's strengths, weaknesses, and provide actionable recommendations. " +
	"Your feedback should be insightful and directly related to the content of the interview. " +
	"Format your response as a single JSON object with three keys: " +
	"'strengths', 'weaknesses', 'recommendations'."

const resumeContextTemplate = "The candidate's resume is provided below. Use it to cross-reference " +
	"their spoken experience. Tailor your feedback based on both the interview and the resume.\n\n" +
	"--- RESUME ---\n%s\n--- END RESUME ---"

// BuildSystemPrompt returns the fixed coaching instruction, with a delimited
// resume block appended when resume text is present.
func BuildSystemPrompt(resumeText string) string {
	if resumeText == "" {
		return systemPrompt
	}
	return systemPrompt + "\n\n" + fmt.Sprintf(resumeContextTemplate, resumeText)
}

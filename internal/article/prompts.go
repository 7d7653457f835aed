package article

import (
	"fmt"

	"github.com/TobiSchelling/seowriter/internal/llm"
)

const (
	seoTitleSystem = "You are an expert in SEO content creation. Your task is to generate SEO-friendly titles that incorporate the given keywords effectively."
	metaSystem     = "You are an expert in SEO content creation. Your task is to generate compelling meta descriptions that effectively incorporate the given keywords."
	outlineSystem  = "You are an expert in SEO content creation. Your task is to generate detailed and well-structured outlines for articles based on the given keywords."
	articleSystem  = "You are an expert in SEO content creation. Your task is to generate SEO-friendly articles that incorporate the given keywords effectively. Ensure that the content is easy to read and understand."
	critiqueSystem = "You are a helpful assistant."
)

const articlePrompt = `Write a %s article titled '%s', focusing on the primary keyword '%s' and including secondary keywords '%s'. ` +
	`The article should be approximately %d words, well-structured with appropriate headings and subheadings, and maintain a keyword density of around 1-2%%. ` +
	`Ensure the content is original, engaging, and easy to read. ` +
	`Use short sentences (average 15 words or fewer) and simple, everyday language to enhance readability. ` +
	`Naturally incorporate the primary keyword '%s' throughout the article to achieve the desired keyword density. ` +
	`Do not exceed the specified word count.`

const critiquePrompt = `Please evaluate the following article in terms of coherence, tone consistency, and overall quality:

%s

Evaluation:`

// SEOTitlePrompt asks for a search-optimised variant of the title.
func SEOTitlePrompt(r Request) llm.Prompt {
	return llm.Prompt{
		System: seoTitleSystem,
		User:   fmt.Sprintf("Create an SEO-friendly title for an article titled '%s' with the primary keyword '%s'.", r.Title, r.PrimaryKeyword),
	}
}

// MetaDescriptionPrompt asks for a search-result snippet.
func MetaDescriptionPrompt(r Request) llm.Prompt {
	return llm.Prompt{
		System: metaSystem,
		User:   fmt.Sprintf("Write an engaging meta description for an article titled '%s', focusing on '%s'.", r.Title, r.PrimaryKeyword),
	}
}

// OutlinePrompt asks for a heading skeleton.
func OutlinePrompt(r Request) llm.Prompt {
	return llm.Prompt{
		System: outlineSystem,
		User: fmt.Sprintf("Create a detailed outline for an article titled '%s', with the primary keyword '%s' and secondary keywords '%s'.",
			r.Title, r.PrimaryKeyword, FormatKeywords(r.SecondaryKeywords)),
	}
}

// ArticlePrompt asks for the full article body at the given word count.
func ArticlePrompt(r Request, words int) llm.Prompt {
	return llm.Prompt{
		System: articleSystem,
		User: fmt.Sprintf(articlePrompt,
			r.Tone, r.Title, r.PrimaryKeyword, FormatKeywords(r.SecondaryKeywords), words, r.PrimaryKeyword),
	}
}

// CritiquePrompt asks for a qualitative review of a generated article.
func CritiquePrompt(body string) llm.Prompt {
	return llm.Prompt{
		System: critiqueSystem,
		User:   fmt.Sprintf(critiquePrompt, body),
	}
}

package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"docuchat/config"
	"docuchat/internal/core/docprep"
	"docuchat/internal/database/model"
	"docuchat/pkg/logger"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Run answers one question for a bot: reload the bot's documents, assemble
// the bounded context string, inject it into the prompt, call the model and
// persist the transcript.
func Run(ctx context.Context, bot *model.Chatbot, question string) (Response, error) {
	docs, err := loadDocuments(ctx, bot.ID)
	if err != nil {
		logger.Error(err, "%v: load documents failed", config.ModuleChat)
		return Response{}, err
	}

	contextStr := docprep.BuildContext(docs, config.Cfg.Upload.ContextMaxChars)

	sysMsg, userMsg := buildPrompt(bot.Name, question, contextStr)

	llmCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	answer, err := callLLM(llmCtx, sysMsg, userMsg)
	if err != nil {
		logger.Error(err, "%v: call llm failed", config.ModuleChat)
		return Response{}, err
	}

	if err := persistMessages(ctx, bot.ID, question, answer); err != nil {
		logger.Error(err, "%v: persist messages failed", config.ModuleChat)
	}

	return Response{Answer: answer, DocumentsUsed: len(docs)}, nil
}

func buildPrompt(botName, question, contextStr string) (systemMsg, userMsg string) {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("You are %s, a support assistant. ", botName))
	b.WriteString("Answer using only the business documents below. ")
	b.WriteString("If the documents do not contain the answer, say you don't know rather than guessing.\n\n")
	if contextStr == "" {
		b.WriteString("No documents have been uploaded for this assistant.\n")
	} else {
		b.WriteString("Documents:\n")
		b.WriteString(contextStr)
		b.WriteString("\n")
	}
	systemMsg = b.String()
	userMsg = question
	return
}

func callLLM(ctx context.Context, promptSystem, promptUser string) (string, error) {
	key := config.Cfg.OpenAI.Key
	if key == "" {
		return "", errors.New("missing openai key")
	}
	client := openai.NewClient(option.WithAPIKey(key))
	req := chatRequest{
		Model:       config.Cfg.OpenAI.Model,
		Temperature: config.Cfg.OpenAI.Temperature,
		MaxTokens:   config.Cfg.OpenAI.MaxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: promptSystem},
			{Role: "user", Content: promptUser},
		},
	}
	var out chatResponse
	if err := client.Post(ctx, "/chat/completions", req, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("no choices returned")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

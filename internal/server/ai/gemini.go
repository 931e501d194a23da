package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/meetscribe/meetscribe/internal/common"
)

// GeminiClient implements Gateway over the Gemini generateContent REST
// API. The endpoint is configurable so tests (and local stand-ins) can
// point it elsewhere.
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewGeminiClient constructs a client for the given endpoint, key and
// model name.
func NewGeminiClient(baseURL, apiKey, model string) *GeminiClient {
	return &GeminiClient{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

// Model returns the configured model identifier, recorded on every
// derived row.
func (c *GeminiClient) Model() string {
	return c.model
}

type generatePart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *exportInlineData `json:"inline_data,omitempty"`
}

type exportInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate performs one generateContent call and returns the first
// candidate's concatenated text.
func (c *GeminiClient) generate(ctx context.Context, parts []generatePart) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	body, err := json.Marshal(generateRequest{Contents: []generateContent{{Parts: parts}}})
	if err != nil {
		return "", fmt.Errorf("%w: encoding request: %v", common.ErrUpstreamFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: building request: %v", common.ErrUpstreamFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", common.ErrUpstreamFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", common.ErrUpstreamFailure, resp.StatusCode, raw)
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", common.ErrUpstreamFailure, err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", common.ErrUpstreamFailure)
	}

	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}

const transcribePrompt = `Transcribe the following audio recording verbatim. ` +
	`Provide ONLY the transcribed text, with no commentary.`

func (c *GeminiClient) Transcribe(ctx context.Context, audio []byte, mimeType string) (*TranscriptionResult, error) {
	parts := []generatePart{
		{Text: transcribePrompt},
		{InlineData: &exportInlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(audio),
		}},
	}

	text, err := c.generate(ctx, parts)
	if err != nil {
		return nil, err
	}

	return &TranscriptionResult{Text: text}, nil
}

const translatePromptFmt = `You are an expert translator specializing in Banglish to English translation.

Banglish is Bangla language written in Roman/Latin script. Your task is to translate the following Banglish text into proper, natural English.

Banglish text: %s

Provide ONLY the English translation. Be accurate and natural.

After the translation, on a new line, also provide your confidence score (0.0 to 1.0) in the format: 'Confidence: 0.95'`

func (c *GeminiClient) Translate(ctx context.Context, source string) (*TranslationResult, error) {
	text, err := c.generate(ctx, []generatePart{{Text: fmt.Sprintf(translatePromptFmt, source)}})
	if err != nil {
		return nil, err
	}

	translated, confidence := extractConfidence(text)

	return &TranslationResult{TranslatedText: translated, ConfidenceScore: &confidence}, nil
}

const analyzePromptFmt = `You are a meeting analyst. Analyze the following meeting transcript and respond using exactly these section headers, each on its own line:

SUMMARY:
BUSINESS INSIGHTS:
TECHNICAL INSIGHTS:
ACTION ITEMS:
KEY TOPICS:

Transcript:
%s`

const markdownPromptFmt = `Produce complete, well-structured meeting notes in Markdown for the following transcript. Provide ONLY the Markdown document.

Transcript:
%s`

func (c *GeminiClient) Analyze(ctx context.Context, content string, withMarkdown bool) (*AnalysisResult, error) {
	text, err := c.generate(ctx, []generatePart{{Text: fmt.Sprintf(analyzePromptFmt, content)}})
	if err != nil {
		return nil, err
	}

	result := parseAnalysisSections(text)

	if withMarkdown {
		md, err := c.generate(ctx, []generatePart{{Text: fmt.Sprintf(markdownPromptFmt, content)}})
		if err != nil {
			return nil, err
		}
		result.NotesMarkdown = &md
	}

	return result, nil
}

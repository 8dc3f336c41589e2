package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"notalx/config"
	"notalx/pkg/log"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// ExtractedTask 模型抽取出的日程条目
type ExtractedTask struct {
	Title        string   `json:"task_title"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Participants []string `json:"participants"`
	Location     string   `json:"location"`
}

const extractPrompt = `You are a scheduling assistant. Extract every calendar task from the note below.
Respond with strict JSON only, no markdown, no explanation, exactly this shape:
{"success":true,"tasks":[{"task_title":"...","date":"2006-01-02","time":"15:04","participants":["name"],"location":"..."}]}
Use 24h time. Leave "date", "time", "location" empty and "participants" as [] when the note does not say.
If the note contains no schedulable task respond with {"success":false,"tasks":[]}.

Note title: %s
Note content:
%s`

type Extractor struct {
	client openai.Client
	model  string
}

func NewExtractor(conf *config.Config) *Extractor {
	return &Extractor{
		client: openai.NewClient(
			option.WithAPIKey(conf.LLM.ApiKey),
			option.WithBaseURL(conf.LLM.BaseURL),
		),
		model: conf.LLM.Model,
	}
}

// ExtractTasks 调用模型抽取日程，ok=false 表示模型判定无可抽取任务
func (e *Extractor) ExtractTasks(ctx context.Context, title, content string) ([]ExtractedTask, bool, error) {
	params := openai.ChatCompletionNewParams{
		Model: e.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf(extractPrompt, title, content)),
		},
	}

	startTime := time.Now()
	completion, err := e.client.Chat.Completions.New(ctx, params)
	if err != nil {
		log.L.Error("failed to extract tasks", zap.Error(err))
		return nil, false, err
	}
	if len(completion.Choices) == 0 {
		return nil, false, fmt.Errorf("llm returned no choices")
	}

	raw := completion.Choices[0].Message.Content
	log.L.Info("task extraction", zap.Int("chars", len(raw)), zap.Duration("gen time", time.Since(startTime)))

	return ParseExtraction(raw)
}

// ParseExtraction 解析模型输出的 JSON，容忍 markdown 代码块包裹
func ParseExtraction(raw string) ([]ExtractedTask, bool, error) {
	raw = stripFences(raw)
	if !gjson.Valid(raw) {
		return nil, false, fmt.Errorf("llm output is not valid json")
	}

	root := gjson.Parse(raw)
	if !root.Get("success").Bool() {
		return nil, false, nil
	}

	var tasks []ExtractedTask
	for _, item := range root.Get("tasks").Array() {
		title := strings.TrimSpace(item.Get("task_title").String())
		if title == "" {
			continue
		}
		task := ExtractedTask{
			Title:        title,
			Date:         strings.TrimSpace(item.Get("date").String()),
			Time:         strings.TrimSpace(item.Get("time").String()),
			Location:     strings.TrimSpace(item.Get("location").String()),
			Participants: make([]string, 0),
		}
		for _, p := range item.Get("participants").Array() {
			if name := strings.TrimSpace(p.String()); name != "" {
				task.Participants = append(task.Participants, name)
			}
		}
		tasks = append(tasks, task)
	}

	return tasks, true, nil
}

func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(raw, "```")
	}
	return strings.TrimSpace(raw)
}

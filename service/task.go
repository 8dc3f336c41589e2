package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"notalx/dao"
	"notalx/models"
	"notalx/pkg/llm"
	"notalx/pkg/log"
	"notalx/pkg/response"
	"notalx/pkg/snowflake"
	"notalx/pkg/strutil"
	"notalx/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// 提醒提前量
	reminderLead = 15 * time.Minute
	// 时间缺失或无法解析时的兜底
	fallbackDateOffset     = 2 * time.Hour
	fallbackReminderOffset = time.Hour
)

var _ ITaskService = (*TaskService)(nil)

type ITaskService interface {
	CreateSchedule(ctx context.Context, note *models.Note, ownerID int64) ([]*types.TaskInfo, error)
	ListByNote(ctx context.Context, noteID int64) (*types.ListTasksResponse, error)
	Get(ctx context.Context, task *models.Task) (*types.TaskInfo, error)
	Update(ctx context.Context, task *models.Task, req *types.UpdateTaskRequest) (*types.TaskInfo, error)
	Delete(ctx context.Context, task *models.Task) error
	RemoveParticipant(ctx context.Context, task *models.Task, userID int64) error
}

type TaskService struct {
	Users        *dao.UserDAO
	Tasks        *dao.TaskDAO
	Participants *dao.TaskParticipantDAO
	Extractor    *llm.Extractor
	Dispatcher   *Dispatcher
}

// CreateSchedule 由模型从笔记内容抽取日程，请求者为所有者（隐含参与者）
func (s *TaskService) CreateSchedule(ctx context.Context, note *models.Note, ownerID int64) ([]*types.TaskInfo, error) {
	extracted, ok, err := s.Extractor.ExtractTasks(ctx, note.Title, note.Content)
	if err != nil {
		return nil, response.Internal("Task extraction failed")
	}
	if !ok || len(extracted) == 0 {
		return nil, response.Validation("No schedulable tasks found in this note")
	}

	now := time.Now()
	infos := make([]*types.TaskInfo, 0, len(extracted))
	for _, item := range extracted {
		date, reminder := resolveSchedule(now, item.Date, item.Time)

		task := &models.Task{
			ID:        snowflake.GenID(),
			OwnerID:   ownerID,
			NoteID:    note.ID,
			Name:      item.Title,
			Date:      date,
			Reminder:  reminder,
			Location:  item.Location,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.Tasks.Create(ctx, task); err != nil {
			return nil, err
		}

		info := types.ToTaskInfo(task)
		info.Participants = s.attachByName(ctx, task, item.Participants)
		infos = append(infos, info)
	}

	return infos, nil
}

// resolveSchedule 日期时间合成规则：
// 无法解析回落 now+2h/提醒 now+1h；已过去钳到 now+1h；否则提醒为开始前 15 分钟
func resolveSchedule(now time.Time, dateStr, timeStr string) (time.Time, time.Time) {
	date, ok := combineDateTime(now.Location(), dateStr, timeStr)
	if !ok {
		return now.Add(fallbackDateOffset), now.Add(fallbackReminderOffset)
	}
	if date.Before(now) {
		date = now.Add(time.Hour)
	}
	return date, date.Add(-reminderLead)
}

func combineDateTime(loc *time.Location, dateStr, timeStr string) (time.Time, bool) {
	dateStr = strings.TrimSpace(dateStr)
	timeStr = strings.TrimSpace(timeStr)
	if dateStr == "" {
		return time.Time{}, false
	}
	if timeStr == "" {
		timeStr = "09:00"
	}

	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 15:04:05", "2006-01-02 3:04 PM"} {
		if t, err := time.ParseInLocation(layout, dateStr+" "+timeStr, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// attachByName 把抽取出的参与者名字匹配到已注册用户，匹配不到的忽略
func (s *TaskService) attachByName(ctx context.Context, task *models.Task, names []string) []int64 {
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		user, err := s.Users.FindByName(ctx, strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.L.Warn("participant lookup error", zap.String("name", name), zap.Error(err))
			}
			continue
		}
		if user.ID == task.OwnerID {
			continue
		}
		if err := s.addParticipant(ctx, task, user.ID); err != nil {
			log.L.Warn("participant attach error", zap.Int64("user_id", user.ID), zap.Error(err))
			continue
		}
		ids = append(ids, user.ID)
	}
	return ids
}

func (s *TaskService) addParticipant(ctx context.Context, task *models.Task, userID int64) error {
	row := &models.TaskParticipant{
		ID:        snowflake.GenID(),
		TaskID:    task.ID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.Participants.Create(ctx, row); err != nil {
		return err
	}

	s.Dispatcher.Dispatch(
		models.NotificationTaskAssigned,
		"You were added to a task",
		"You are now a participant of \""+task.Name+"\".",
		map[string]any{"task_id": task.ID, "note_id": task.NoteID},
		[]int64{userID},
	)
	return nil
}

func (s *TaskService) ListByNote(ctx context.Context, noteID int64) (*types.ListTasksResponse, error) {
	tasks, err := s.Tasks.FindByNote(ctx, noteID)
	if err != nil {
		return nil, err
	}

	resp := &types.ListTasksResponse{Tasks: make([]*types.TaskInfo, 0, len(tasks))}
	for _, task := range tasks {
		info := types.ToTaskInfo(task)
		info.Participants = s.participantIDs(ctx, task.ID)
		resp.Tasks = append(resp.Tasks, info)
	}
	return resp, nil
}

func (s *TaskService) Get(ctx context.Context, task *models.Task) (*types.TaskInfo, error) {
	info := types.ToTaskInfo(task)
	info.Participants = s.participantIDs(ctx, task.ID)
	return info, nil
}

func (s *TaskService) participantIDs(ctx context.Context, taskID int64) []int64 {
	rows, err := s.Participants.FindByTask(ctx, taskID)
	if err != nil {
		log.L.Warn("participant list error", zap.Int64("task_id", taskID), zap.Error(err))
		return []int64{}
	}
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserID)
	}
	return ids
}

// Update 日期必须可解析，时长必须符合字面量语法，新参与者不得重复
func (s *TaskService) Update(ctx context.Context, task *models.Task, req *types.UpdateTaskRequest) (*types.TaskInfo, error) {
	updates := map[string]any{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, response.Validation("Task name cannot be empty")
		}
		updates["name"] = name
	}

	if req.Date != nil {
		date, ok := parseTaskDate(*req.Date)
		if !ok {
			return nil, response.Validation("Invalid task date")
		}
		updates["date"] = date
		updates["reminder"] = date.Add(-reminderLead)
	}

	if req.Duration != nil {
		if !strutil.IsLiteralTime(*req.Duration) {
			return nil, response.Validation("Duration must look like \"30 minutes\" or \"1 hour\"")
		}
		updates["duration"] = strings.TrimSpace(*req.Duration)
	}

	if req.Location != nil {
		updates["location"] = strings.TrimSpace(*req.Location)
	}

	if len(req.Participants) > 0 {
		if err := s.addParticipants(ctx, task, req.Participants); err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := s.Tasks.UpdateById(ctx, task.ID, updates); err != nil {
			return nil, err
		}
	}

	fresh, err := s.Tasks.FindById(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	info := types.ToTaskInfo(fresh)
	info.Participants = s.participantIDs(ctx, task.ID)
	return info, nil
}

func parseTaskDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// addParticipants 全量校验后才写入，冲突按名字逐个列出
func (s *TaskService) addParticipants(ctx context.Context, task *models.Task, userIDs []int64) error {
	users, err := s.Users.FindByIDs(ctx, userIDs)
	if err != nil {
		return err
	}
	found := make(map[int64]*models.User, len(users))
	for _, u := range users {
		found[u.ID] = u
	}

	var conflicts []string
	for _, id := range userIDs {
		user, ok := found[id]
		if !ok {
			return response.Validation("Some participants do not exist")
		}
		if id == task.OwnerID || s.Participants.IsParticipant(ctx, task.ID, id) {
			conflicts = append(conflicts, user.Name)
		}
	}
	if len(conflicts) > 0 {
		return response.Validation("Already participants: " + strings.Join(conflicts, ", "))
	}

	for _, id := range userIDs {
		if err := s.addParticipant(ctx, task, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *TaskService) Delete(ctx context.Context, task *models.Task) error {
	if err := s.Participants.DeleteByTask(ctx, task.ID); err != nil {
		return err
	}
	return s.Tasks.DeleteById(ctx, task.ID)
}

// RemoveParticipant 所有者是隐含参与者，不可移除
func (s *TaskService) RemoveParticipant(ctx context.Context, task *models.Task, userID int64) error {
	if userID == task.OwnerID {
		return response.Forbidden("The task owner cannot be removed")
	}
	return s.Participants.DeleteByTaskAndUser(ctx, task.ID, userID)
}

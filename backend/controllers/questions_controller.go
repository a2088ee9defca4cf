package controllers

import (
	"encoding/json"
	"errors"
	"fmt"

	"eduflow/backend/config"
	"eduflow/backend/models"
	"eduflow/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type QuestionsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewQuestionsController(db *gorm.DB, cfg *config.Config) *QuestionsController {
	return &QuestionsController{DB: db, Cfg: cfg}
}

func questionProjection(q *models.Question) (fiber.Map, error) {
	var options []string
	if err := json.Unmarshal([]byte(q.Options), &options); err != nil {
		return nil, fmt.Errorf("question %d has corrupt options: %w", q.ID, err)
	}

	return fiber.Map{
		"id":           q.ID,
		"videoId":      q.VideoID,
		"questionText": q.QuestionText,
		"options":      options,
	}, nil
}

// AddQuestion stores a quiz question for a video. The correct answer is
// not required to be one of the options.
func (qc *QuestionsController) AddQuestion(c *fiber.Ctx) error {
	type QuestionInput struct {
		VideoID       uint     `json:"videoId"`
		QuestionText  string   `json:"questionText"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correctAnswer"`
	}

	var input QuestionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.VideoID == 0 || input.QuestionText == "" || len(input.Options) < 2 || input.CorrectAnswer == "" {
		return utils.BadRequest(c, "Please provide videoId, questionText, options, and correctAnswer")
	}

	var video models.Video
	if err := qc.DB.First(&video, input.VideoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Video not found")
		}
		return utils.InternalServerError(c, err)
	}

	optionsJSON, err := json.Marshal(input.Options)
	if err != nil {
		return utils.InternalServerError(c, err)
	}

	question := models.Question{
		VideoID:       input.VideoID,
		QuestionText:  input.QuestionText,
		Options:       string(optionsJSON),
		CorrectAnswer: input.CorrectAnswer,
	}

	if err := qc.DB.Create(&question).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	// Creation is the admin path, so the stored answer is echoed back here
	// and nowhere else.
	data, err := questionProjection(&question)
	if err != nil {
		return utils.InternalServerError(c, err)
	}
	data["correctAnswer"] = question.CorrectAnswer

	return utils.SuccessMessage(c, fiber.StatusCreated, "Question added successfully", data)
}

// GetQuestionsByVideo lists a video's quiz with the correct answers
// stripped from every record.
func (qc *QuestionsController) GetQuestionsByVideo(c *fiber.Ctx) error {
	var questions []models.Question
	if err := qc.DB.Where("video_id = ?", c.Params("videoId")).Find(&questions).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	data := make([]fiber.Map, 0, len(questions))
	for i := range questions {
		projected, err := questionProjection(&questions[i])
		if err != nil {
			return utils.InternalServerError(c, err)
		}
		data = append(data, projected)
	}

	return utils.Success(c, fiber.StatusOK, data)
}

// ValidateAnswers checks a quiz batch against the stored answers. The
// first wrong or unknown question marks the whole batch incorrect and
// stops evaluation; only the aggregate verdict is returned.
func (qc *QuestionsController) ValidateAnswers(c *fiber.Ctx) error {
	type Answer struct {
		QuestionID     uint   `json:"questionId"`
		SelectedOption string `json:"selectedOption"`
	}
	type ValidateInput struct {
		Answers []Answer `json:"answers"`
	}

	var input ValidateInput
	if err := c.BodyParser(&input); err != nil || input.Answers == nil {
		return utils.BadRequest(c, "answers must be an array")
	}

	allCorrect := true
	for _, answer := range input.Answers {
		var question models.Question
		err := qc.DB.First(&question, answer.QuestionID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				allCorrect = false
				break
			}
			return utils.InternalServerError(c, err)
		}

		if question.CorrectAnswer != answer.SelectedOption {
			allCorrect = false
			break
		}
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"allCorrect": allCorrect,
	})
}

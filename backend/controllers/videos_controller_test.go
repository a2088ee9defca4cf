package controllers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"eduflow/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// uploadMultipartVideo posts a multipart form with a "video" file part
// carrying the given content type.
func uploadMultipartVideo(t *testing.T, fields map[string]string, filename, contentType string, content []byte) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write form field %s: %v", key, err)
		}
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="video"; filename=%q`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create file part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write file part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/videos/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("POST /api/videos/ multipart: %v", err)
	}
	return resp
}

func TestUploadVideoWithURL(t *testing.T) {
	course := createTestCourse(t, "Video Host Course")

	resp := doJSON(t, "POST", "/api/videos/", map[string]interface{}{
		"title":      "Intro Lecture",
		"courseId":   course.ID,
		"videoUrl":   "https://videos.example.com/intro.mp4",
		"duration":   300,
		"uploadedBy": "jane@example.com",
		"order":      1,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "Intro Lecture", data["title"])
	assert.Equal(t, "https://videos.example.com/intro.mp4", data["videoUrl"])
	assert.Equal(t, float64(0), data["viewCount"])
}

func TestUploadVideoMultipartFile(t *testing.T) {
	course := createTestCourse(t, "Multipart Upload Course")
	content := []byte("fake mp4 payload")

	resp := uploadMultipartVideo(t, map[string]string{
		"title":      "Uploaded Lecture",
		"courseId":   strconv.FormatUint(uint64(course.ID), 10),
		"duration":   "300",
		"uploadedBy": "jane@example.com",
	}, "lecture.mp4", "video/mp4", content)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "Uploaded Lecture", data["title"])
	assert.Equal(t, float64(len(content)), data["fileSize"])
	assert.Equal(t, "video/mp4", data["mimeType"])

	// The stored file keeps the original extension under a fresh uuid name.
	videoURL := data["videoUrl"].(string)
	assert.True(t, strings.HasSuffix(videoURL, ".mp4"), "videoUrl %q should keep the .mp4 extension", videoURL)
	assert.Contains(t, videoURL, cfg.UploadDir)

	base := strings.TrimSuffix(filepath.Base(videoURL), filepath.Ext(videoURL))
	_, err := uuid.Parse(base)
	assert.NoError(t, err, "stored filename %q should be a uuid", base)
}

func TestUploadVideoMultipartRejectsNonVideo(t *testing.T) {
	course := createTestCourse(t, "Multipart Mime Course")

	resp := uploadMultipartVideo(t, map[string]string{
		"title":      "Not a video",
		"courseId":   strconv.FormatUint(uint64(course.ID), 10),
		"duration":   "60",
		"uploadedBy": "jane@example.com",
	}, "payload.bin", "application/octet-stream", []byte("binary junk"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "Only video files are allowed", result["message"])
}

func TestUploadVideoMissingFields(t *testing.T) {
	resp := doJSON(t, "POST", "/api/videos/", map[string]interface{}{
		"title": "No course",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadVideoMissingSource(t *testing.T) {
	course := createTestCourse(t, "Sourceless Video Course")

	resp := doJSON(t, "POST", "/api/videos/", map[string]interface{}{
		"title":      "No URL and no file",
		"courseId":   course.ID,
		"duration":   60,
		"uploadedBy": "jane@example.com",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "Video URL or file is required", result["message"])
}

func TestUploadVideoUnknownCourse(t *testing.T) {
	resp := doJSON(t, "POST", "/api/videos/", map[string]interface{}{
		"title":      "Orphan video",
		"courseId":   999999,
		"videoUrl":   "https://videos.example.com/orphan.mp4",
		"duration":   60,
		"uploadedBy": "jane@example.com",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetVideoByIDIncrementsViewCount(t *testing.T) {
	course := createTestCourse(t, "View Count Course")
	video := createTestVideo(t, course.ID, "counted", 0)

	resp := doJSON(t, "GET", videoURL(video.ID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["viewCount"])

	// Every detail fetch counts, including repeats.
	resp = doJSON(t, "GET", videoURL(video.ID), nil)
	data = decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["viewCount"])
}

func TestGetVideoByIDNotFound(t *testing.T) {
	resp := doJSON(t, "GET", "/api/videos/999999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetVideosByCourse(t *testing.T) {
	course := createTestCourse(t, "Listing Course")
	createTestVideo(t, course.ID, "list-b", 1)
	createTestVideo(t, course.ID, "list-a", 0)

	resp := doJSON(t, "GET", fmt.Sprintf("/api/videos/course/%d", course.ID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	data := result["data"].([]interface{})
	assert.Len(t, data, 2)
	assert.Equal(t, "list-a", data[0].(map[string]interface{})["title"])
	assert.Equal(t, "list-b", data[1].(map[string]interface{})["title"])
}

func TestGetVideosByCourseNotFound(t *testing.T) {
	resp := doJSON(t, "GET", "/api/videos/course/999999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateVideoRejectsUnknownField(t *testing.T) {
	course := createTestCourse(t, "Video Patch Course")
	video := createTestVideo(t, course.ID, "patched", 0)

	resp := doJSON(t, "PUT", videoURL(video.ID), map[string]interface{}{
		"title":     "New Title",
		"viewCount": 1000,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var unchanged models.Video
	assert.NoError(t, db.First(&unchanged, video.ID).Error)
	assert.Equal(t, "patched", unchanged.Title)
}

func TestUpdateVideo(t *testing.T) {
	course := createTestCourse(t, "Video Update Course")
	video := createTestVideo(t, course.ID, "before", 0)

	resp := doJSON(t, "PUT", videoURL(video.ID), map[string]interface{}{
		"title":       "after",
		"isPublished": true,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "after", data["title"])
	assert.Equal(t, true, data["isPublished"])
}

func TestDeleteVideo(t *testing.T) {
	course := createTestCourse(t, "Video Delete Course")
	video := createTestVideo(t, course.ID, "deleted", 0)

	resp := doJSON(t, "DELETE", videoURL(video.ID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, "GET", videoURL(video.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestReorderVideos(t *testing.T) {
	course := createTestCourse(t, "Reorder Course")
	v1 := createTestVideo(t, course.ID, "reorder-1", 0)
	v2 := createTestVideo(t, course.ID, "reorder-2", 1)
	v3 := createTestVideo(t, course.ID, "reorder-3", 2)
	v4 := createTestVideo(t, course.ID, "reorder-4", 7)

	resp := doJSON(t, "PUT", fmt.Sprintf("/api/videos/course/%d/reorder", course.ID), map[string]interface{}{
		"videoOrder": []uint{v2.ID, v1.ID, v3.ID},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	expected := map[uint]int{v2.ID: 0, v1.ID: 1, v3.ID: 2}
	for id, want := range expected {
		var video models.Video
		assert.NoError(t, db.First(&video, id).Error)
		assert.Equal(t, want, video.SequenceOrder)
	}

	// A video absent from the list keeps its previous order.
	var untouched models.Video
	assert.NoError(t, db.First(&untouched, v4.ID).Error)
	assert.Equal(t, 7, untouched.SequenceOrder)
}

func TestReorderVideosRequiresArray(t *testing.T) {
	course := createTestCourse(t, "Reorder Validation Course")

	resp := doJSON(t, "PUT", fmt.Sprintf("/api/videos/course/%d/reorder", course.ID), map[string]interface{}{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetVideoAnalytics(t *testing.T) {
	course := createTestCourse(t, "Analytics Course")
	video := createTestVideo(t, course.ID, "analyzed", 0)

	// Two detail fetches, then analytics should report both views.
	doJSON(t, "GET", videoURL(video.ID), nil)
	doJSON(t, "GET", videoURL(video.ID), nil)

	resp := doJSON(t, "GET", videoURL(video.ID)+"/analytics", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "analyzed", data["videoTitle"])
	assert.Equal(t, float64(2), data["viewCount"])
	assert.Equal(t, float64(course.ID), data["courseId"])
}

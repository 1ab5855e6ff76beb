package mediaController

import (
	"coursecraft/middleware"
	"coursecraft/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// UploadMedia stores an uploaded file (lesson video, course thumbnail) in the
// media bucket and returns the object key to attach to a lesson or course.
func UploadMedia(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file provided!", nil)
	}

	src, err := file.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
	}
	defer src.Close()

	objectKey := utils.BuildObjectKey(file.Filename)
	contentType := file.Header.Get("Content-Type")

	if err := utils.Media.Upload(c.Context(), objectKey, src, file.Size, contentType); err != nil {
		log.Printf("Error uploading %s to media storage: %v", objectKey, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "File uploaded successfully!", fiber.Map{
		"object_key": objectKey,
		"filename":   file.Filename,
		"size":       file.Size,
	})
}

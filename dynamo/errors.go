package dynamo

import (
	"errors"
	"fmt"

	"github.com/gsiscaler/autoscaler/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

var rejectionCategories = map[string]models.RejectionCategory{
	"LimitExceededException": models.RejectionLimitExceeded,
	"ValidationException":    models.RejectionValidation,
	"ResourceInUseException": models.RejectionResourceBusy,
	"AccessDeniedException":  models.RejectionAccessDenied,
}

// classify turns an UpdateTable failure into a CapacityRejection when the
// service answered with an error code. Transport failures are returned as is.
func classify(err error) error {
	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return fmt.Errorf("%s: %w", notFound.ErrorMessage(), models.ErrNotFound)
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	category, ok := rejectionCategories[apiErr.ErrorCode()]
	if !ok {
		category = models.RejectionUnrecognized
	}
	return models.NewCapacityRejection(category, apiErr.ErrorCode(), apiErr.ErrorMessage())
}

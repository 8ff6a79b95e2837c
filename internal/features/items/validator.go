package items

import "strings"

// ValidateTitle validates the item title
func ValidateTitle(title string) *ValidationError {
	title = strings.TrimSpace(title)
	if title == "" {
		return &ValidationError{Field: "title", Reason: "title is required"}
	}
	if len(title) > 100 {
		return &ValidationError{Field: "title", Reason: "title cannot exceed 100 characters"}
	}
	return nil
}

// ValidateLocation validates the item location
func ValidateLocation(location string) *ValidationError {
	if strings.TrimSpace(location) == "" {
		return &ValidationError{Field: "location", Reason: "location is required"}
	}
	return nil
}

// ValidateContactInfo validates the reporter contact details
func ValidateContactInfo(contact string) *ValidationError {
	if strings.TrimSpace(contact) == "" {
		return &ValidationError{Field: "contact_info", Reason: "contact information is required"}
	}
	return nil
}

// ValidateDescription validates the item description
func ValidateDescription(description string) *ValidationError {
	if len(description) > 2000 {
		return &ValidationError{Field: "description", Reason: "description cannot exceed 2000 characters"}
	}
	return nil
}

// ValidateKind validates the item kind
func ValidateKind(kind Kind) *ValidationError {
	switch kind {
	case KindLost, KindFound:
		return nil
	}
	return &ValidationError{Field: "item_type", Reason: "item type must be one of: lost, found"}
}

// ValidateFilterKind validates a filter kind, which also allows the
// unrestricted sentinel
func ValidateFilterKind(kind Kind) *ValidationError {
	switch kind {
	case KindLost, KindFound, KindAll:
		return nil
	}
	return &ValidationError{Field: "type", Reason: "type must be one of: lost, found, all"}
}

// ValidateStatus validates a lifecycle status
func ValidateStatus(status Status) *ValidationError {
	switch status {
	case StatusSearching, StatusFound, StatusClaimed:
		return nil
	}
	return &ValidationError{Field: "status", Reason: "status must be one of: dicari, ditemukan, diclaim"}
}

// ValidateFilterStatus validates a filter status, which also allows the
// unrestricted sentinel
func ValidateFilterStatus(status Status) *ValidationError {
	if status == StatusAll {
		return nil
	}
	return ValidateStatus(status)
}

// ValidateSort validates the sort order
func ValidateSort(sort Sort) *ValidationError {
	switch sort {
	case SortNewest, SortOldest:
		return nil
	}
	return &ValidationError{Field: "sort", Reason: "sort must be one of: newest, oldest"}
}

// ValidateFilterSpec validates all filter dimensions
func ValidateFilterSpec(spec FilterSpec) *ValidationError {
	if err := ValidateFilterKind(spec.Kind); err != nil {
		return err
	}
	if err := ValidateFilterStatus(spec.Status); err != nil {
		return err
	}
	return ValidateSort(spec.Sort)
}

// ValidateCreateItemRequest validates all fields required to report an item
func ValidateCreateItemRequest(req *CreateItemRequest) *ValidationError {
	if err := ValidateTitle(req.Title); err != nil {
		return err
	}
	if err := ValidateKind(req.Kind); err != nil {
		return err
	}
	if err := ValidateLocation(req.Location); err != nil {
		return err
	}
	if err := ValidateContactInfo(req.ContactInfo); err != nil {
		return err
	}
	return ValidateDescription(req.Description)
}

// ValidateUpdateItemRequest validates all non-nil fields of a partial update
func ValidateUpdateItemRequest(req *UpdateItemRequest) *ValidationError {
	if req.Title != nil {
		if err := ValidateTitle(*req.Title); err != nil {
			return err
		}
	}
	if req.Kind != nil {
		if err := ValidateKind(*req.Kind); err != nil {
			return err
		}
	}
	if req.Location != nil {
		if err := ValidateLocation(*req.Location); err != nil {
			return err
		}
	}
	if req.ContactInfo != nil {
		if err := ValidateContactInfo(*req.ContactInfo); err != nil {
			return err
		}
	}
	if req.Status != nil {
		if err := ValidateStatus(*req.Status); err != nil {
			return err
		}
	}
	if req.Description != nil {
		if err := ValidateDescription(*req.Description); err != nil {
			return err
		}
	}
	return nil
}

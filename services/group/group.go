package group

import (
	"context"
	"fmt"
	"sort"
	"strings"

	groupRepo "carpool/database/repository/group"
	"carpool/models"
	"carpool/services/validation"
)

// GroupService manages carpool groups and their schedule templates.
type GroupService interface {
	CreateGroup(ctx context.Context, name, ownerID string) (*models.Group, error)
	GetGroup(ctx context.Context, id string) (*models.Group, error)
	AddMember(ctx context.Context, groupID, userID string) error
	SetScheduleConfig(ctx context.Context, groupID string, times map[string][]string) (*models.GroupScheduleConfig, error)
	GetScheduleConfig(ctx context.Context, groupID string) (*models.GroupScheduleConfig, error)
}

// DefaultGroupService implements GroupService.
type DefaultGroupService struct {
	Repo groupRepo.GroupRepository
}

func (s *DefaultGroupService) CreateGroup(ctx context.Context, name, ownerID string) (*models.Group, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("group name must not be empty")
	}
	group := &models.Group{
		Name:      name,
		OwnerID:   ownerID,
		MemberIDs: []string{ownerID},
	}
	if _, err := s.Repo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return group, nil
}

func (s *DefaultGroupService) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	group, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, fmt.Errorf("group %s not found", id)
	}
	return group, nil
}

func (s *DefaultGroupService) AddMember(ctx context.Context, groupID, userID string) error {
	return s.Repo.AddMember(ctx, groupID, userID)
}

// SetScheduleConfig validates and stores a group's schedule template. Keys
// must be weekday names, values "HH:MM" in UTC; each day's list is stored
// sorted and deduplicated.
func (s *DefaultGroupService) SetScheduleConfig(ctx context.Context, groupID string, times map[string][]string) (*models.GroupScheduleConfig, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("schedule config must list at least one weekday")
	}

	normalized := make(map[string][]string, len(times))
	for day, entries := range times {
		key := strings.ToUpper(strings.TrimSpace(day))
		if !models.IsWeekdayName(key) {
			return nil, fmt.Errorf("invalid weekday %q in schedule config", day)
		}
		seen := make(map[string]struct{})
		var clean []string
		for _, raw := range entries {
			hour, minute, err := validation.ParseClockTime(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid time %q for %s: %w", raw, key, err)
			}
			formatted := fmt.Sprintf("%02d:%02d", hour, minute)
			if _, dup := seen[formatted]; dup {
				continue
			}
			seen[formatted] = struct{}{}
			clean = append(clean, formatted)
		}
		if len(clean) == 0 {
			return nil, fmt.Errorf("weekday %s has no valid times", key)
		}
		sort.Strings(clean)
		normalized[key] = clean
	}

	cfg := &models.GroupScheduleConfig{Times: normalized}
	if err := s.Repo.SetScheduleConfig(ctx, groupID, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *DefaultGroupService) GetScheduleConfig(ctx context.Context, groupID string) (*models.GroupScheduleConfig, error) {
	return s.Repo.GetScheduleConfig(ctx, groupID)
}

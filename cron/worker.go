package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"carpool/config"
	"carpool/models"
	"carpool/services/schedule"
	"carpool/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitScheduleWorker runs the async worker in background: trip reminders
// plus the nightly slot-integrity audit.
func InitScheduleWorker(schedSvc schedule.ScheduleService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeTripReminder, handleTripReminder(schedSvc))
	mux.HandleFunc(tasks.TypeSlotAudit, handleSlotAudit(schedSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Nightly audit schedule.
	go runAuditScheduler(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[ScheduleWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ScheduleWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ScheduleWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleTripReminder(schedSvc schedule.ScheduleService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[TripReminder] 🔴 Invalid payload: %v", err)
			return err
		}

		// The slot may have been emptied (and deleted) since the reminder
		// was enqueued; a vanished slot simply cancels the reminder.
		slot, err := schedSvc.GetSlot(ctx, p.SlotID)
		if err != nil || slot == nil {
			log.Printf("[TripReminder] slot %s no longer exists, skipping reminder", p.SlotID)
			return nil
		}

		log.Printf("[TripReminder] ⏰ %s → group %s departs at %s (%d vehicles, %d children)",
			p.Title, slot.GroupID, p.FireDate,
			len(slot.VehicleAssignments), len(slot.ChildAssignments))
		return nil
	}
}

func handleSlotAudit(schedSvc schedule.ScheduleService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		result, err := schedSvc.AuditUpcomingSlots(ctx)
		if err != nil {
			log.Printf("[SlotAudit] ❌ audit failed: %v", err)
			return err
		}
		log.Printf("[SlotAudit] checked %d slots, %d violations", result.Checked, len(result.Violations))
		return nil
	}
}

// runAuditScheduler registers the periodic slot audit (03:00 UTC daily).
func runAuditScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register("0 3 * * *", tasks.NewSlotAuditTask()); err != nil {
		log.Printf("[SlotAudit] ❌ failed to register audit schedule: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[SlotAudit] ❌ scheduler stopped: %v", err)
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ScheduleWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}

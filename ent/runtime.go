// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/marwaELABIDI/ferme-platform/ent/activitytype"
	"github.com/marwaELABIDI/ferme-platform/ent/auditlog"
	entfield "github.com/marwaELABIDI/ferme-platform/ent/field"
	"github.com/marwaELABIDI/ferme-platform/ent/notification"
	"github.com/marwaELABIDI/ferme-platform/ent/project"
	"github.com/marwaELABIDI/ferme-platform/ent/reservation"
	"github.com/marwaELABIDI/ferme-platform/ent/schema"
	"github.com/marwaELABIDI/ferme-platform/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activitytypeMixin := schema.ActivityType{}.Mixin()
	activitytypeMixinFields0 := activitytypeMixin[0].Fields()
	_ = activitytypeMixinFields0
	activitytypeFields := schema.ActivityType{}.Fields()
	_ = activitytypeFields
	// activitytypeDescCreatedAt is the schema descriptor for created_at field.
	activitytypeDescCreatedAt := activitytypeMixinFields0[0].Descriptor()
	// activitytype.DefaultCreatedAt holds the default value on creation for the created_at field.
	activitytype.DefaultCreatedAt = activitytypeDescCreatedAt.Default.(func() time.Time)
	// activitytypeDescUpdatedAt is the schema descriptor for updated_at field.
	activitytypeDescUpdatedAt := activitytypeMixinFields0[1].Descriptor()
	// activitytype.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	activitytype.DefaultUpdatedAt = activitytypeDescUpdatedAt.Default.(func() time.Time)
	// activitytype.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	activitytype.UpdateDefaultUpdatedAt = activitytypeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// activitytypeDescName is the schema descriptor for name field.
	activitytypeDescName := activitytypeFields[1].Descriptor()
	// activitytype.NameValidator is a validator for the "name" field. It is called by the builders before save.
	activitytype.NameValidator = func() func(string) error {
		validators := activitytypeDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[2].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[3].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	entfieldMixin := schema.Field{}.Mixin()
	entfieldMixinFields0 := entfieldMixin[0].Fields()
	_ = entfieldMixinFields0
	entfieldFields := schema.Field{}.Fields()
	_ = entfieldFields
	// entfieldDescCreatedAt is the schema descriptor for created_at field.
	entfieldDescCreatedAt := entfieldMixinFields0[0].Descriptor()
	// entfield.DefaultCreatedAt holds the default value on creation for the created_at field.
	entfield.DefaultCreatedAt = entfieldDescCreatedAt.Default.(func() time.Time)
	// entfieldDescUpdatedAt is the schema descriptor for updated_at field.
	entfieldDescUpdatedAt := entfieldMixinFields0[1].Descriptor()
	// entfield.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	entfield.DefaultUpdatedAt = entfieldDescUpdatedAt.Default.(func() time.Time)
	// entfield.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	entfield.UpdateDefaultUpdatedAt = entfieldDescUpdatedAt.UpdateDefault.(func() time.Time)
	// entfieldDescName is the schema descriptor for name field.
	entfieldDescName := entfieldFields[1].Descriptor()
	// entfield.NameValidator is a validator for the "name" field. It is called by the builders before save.
	entfield.NameValidator = func() func(string) error {
		validators := entfieldDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// entfieldDescTotalCapacity is the schema descriptor for total_capacity field.
	entfieldDescTotalCapacity := entfieldFields[3].Descriptor()
	// entfield.TotalCapacityValidator is a validator for the "total_capacity" field. It is called by the builders before save.
	entfield.TotalCapacityValidator = entfieldDescTotalCapacity.Validators[0].(func(float64) error)
	// entfieldDescFreeCapacity is the schema descriptor for free_capacity field.
	entfieldDescFreeCapacity := entfieldFields[4].Descriptor()
	// entfield.FreeCapacityValidator is a validator for the "free_capacity" field. It is called by the builders before save.
	entfield.FreeCapacityValidator = entfieldDescFreeCapacity.Validators[0].(func(float64) error)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescUserID is the schema descriptor for user_id field.
	notificationDescUserID := notificationFields[1].Descriptor()
	// notification.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	notification.UserIDValidator = notificationDescUserID.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[4].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = func() func(string) error {
		validators := notificationDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[7].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	projectMixin := schema.Project{}.Mixin()
	projectMixinFields0 := projectMixin[0].Fields()
	_ = projectMixinFields0
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectMixinFields0[0].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectMixinFields0[1].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescFieldID is the schema descriptor for field_id field.
	projectDescFieldID := projectFields[1].Descriptor()
	// project.FieldIDValidator is a validator for the "field_id" field. It is called by the builders before save.
	project.FieldIDValidator = projectDescFieldID.Validators[0].(func(string) error)
	// projectDescClientID is the schema descriptor for client_id field.
	projectDescClientID := projectFields[2].Descriptor()
	// project.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	project.ClientIDValidator = projectDescClientID.Validators[0].(func(string) error)
	// projectDescSupervisorID is the schema descriptor for supervisor_id field.
	projectDescSupervisorID := projectFields[3].Descriptor()
	// project.SupervisorIDValidator is a validator for the "supervisor_id" field. It is called by the builders before save.
	project.SupervisorIDValidator = projectDescSupervisorID.Validators[0].(func(string) error)
	// projectDescSurface is the schema descriptor for surface field.
	projectDescSurface := projectFields[5].Descriptor()
	// project.SurfaceValidator is a validator for the "surface" field. It is called by the builders before save.
	project.SurfaceValidator = projectDescSurface.Validators[0].(func(float64) error)
	// projectDescProgressNotes is the schema descriptor for progress_notes field.
	projectDescProgressNotes := projectFields[9].Descriptor()
	// project.ProgressNotesValidator is a validator for the "progress_notes" field. It is called by the builders before save.
	project.ProgressNotesValidator = projectDescProgressNotes.Validators[0].(func(string) error)
	reservationMixin := schema.Reservation{}.Mixin()
	reservationMixinFields0 := reservationMixin[0].Fields()
	_ = reservationMixinFields0
	reservationFields := schema.Reservation{}.Fields()
	_ = reservationFields
	// reservationDescCreatedAt is the schema descriptor for created_at field.
	reservationDescCreatedAt := reservationMixinFields0[0].Descriptor()
	// reservation.DefaultCreatedAt holds the default value on creation for the created_at field.
	reservation.DefaultCreatedAt = reservationDescCreatedAt.Default.(func() time.Time)
	// reservationDescUpdatedAt is the schema descriptor for updated_at field.
	reservationDescUpdatedAt := reservationMixinFields0[1].Descriptor()
	// reservation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reservation.DefaultUpdatedAt = reservationDescUpdatedAt.Default.(func() time.Time)
	// reservation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reservation.UpdateDefaultUpdatedAt = reservationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reservationDescFieldID is the schema descriptor for field_id field.
	reservationDescFieldID := reservationFields[1].Descriptor()
	// reservation.FieldIDValidator is a validator for the "field_id" field. It is called by the builders before save.
	reservation.FieldIDValidator = reservationDescFieldID.Validators[0].(func(string) error)
	// reservationDescClientID is the schema descriptor for client_id field.
	reservationDescClientID := reservationFields[2].Descriptor()
	// reservation.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	reservation.ClientIDValidator = reservationDescClientID.Validators[0].(func(string) error)
	// reservationDescSurfaceRequested is the schema descriptor for surface_requested field.
	reservationDescSurfaceRequested := reservationFields[4].Descriptor()
	// reservation.SurfaceRequestedValidator is a validator for the "surface_requested" field. It is called by the builders before save.
	reservation.SurfaceRequestedValidator = reservationDescSurfaceRequested.Validators[0].(func(float64) error)
	// reservationDescMotivation is the schema descriptor for motivation field.
	reservationDescMotivation := reservationFields[9].Descriptor()
	// reservation.MotivationValidator is a validator for the "motivation" field. It is called by the builders before save.
	reservation.MotivationValidator = reservationDescMotivation.Validators[0].(func(string) error)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[5].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
}

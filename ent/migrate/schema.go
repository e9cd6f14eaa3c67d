// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityTypesColumns holds the columns for the "activity_types" table.
	ActivityTypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true},
	}
	// ActivityTypesTable holds the schema information for the "activity_types" table.
	ActivityTypesTable = &schema.Table{
		Name:       "activity_types",
		Columns:    ActivityTypesColumns,
		PrimaryKey: []*schema.Column{ActivityTypesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activitytype_name",
				Unique:  true,
				Columns: []*schema.Column{ActivityTypesColumns[3]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// FieldsColumns holds the columns for the "fields" table.
	FieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "total_capacity", Type: field.TypeFloat64},
		{Name: "free_capacity", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "INACTIVE"}, Default: "ACTIVE"},
		{Name: "soil_type", Type: field.TypeString, Nullable: true},
	}
	// FieldsTable holds the schema information for the "fields" table.
	FieldsTable = &schema.Table{
		Name:       "fields",
		Columns:    FieldsColumns,
		PrimaryKey: []*schema.Column{FieldsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "field_name",
				Unique:  true,
				Columns: []*schema.Column{FieldsColumns[3]},
			},
			{
				Name:    "field_status",
				Unique:  false,
				Columns: []*schema.Column{FieldsColumns[7]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"RESERVATION_PENDING", "RESERVATION_APPROVED", "RESERVATION_REJECTED", "PROJECT_ASSIGNED", "PROJECT_STATUS_CHANGE"}},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[9], NotificationsColumns[7]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "surface", Type: field.TypeFloat64},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"A_LANCER", "PROGRAMME", "EN_COURS", "FINALISE"}, Default: "A_LANCER"},
		{Name: "progress_notes", Type: field.TypeString, Nullable: true, Size: 4096},
		{Name: "activity_type_id", Type: field.TypeString, Nullable: true},
		{Name: "field_id", Type: field.TypeString},
		{Name: "reservation_project", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "client_id", Type: field.TypeString},
		{Name: "supervisor_id", Type: field.TypeString},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_activity_types_projects",
				Columns:    []*schema.Column{ProjectsColumns[8]},
				RefColumns: []*schema.Column{ActivityTypesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "projects_fields_projects",
				Columns:    []*schema.Column{ProjectsColumns[9]},
				RefColumns: []*schema.Column{FieldsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "projects_reservations_project",
				Columns:    []*schema.Column{ProjectsColumns[10]},
				RefColumns: []*schema.Column{ReservationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "projects_users_client_projects",
				Columns:    []*schema.Column{ProjectsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "projects_users_supervised_projects",
				Columns:    []*schema.Column{ProjectsColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "project_field_id_status",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[9], ProjectsColumns[6]},
			},
			{
				Name:    "project_client_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[11]},
			},
			{
				Name:    "project_supervisor_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[12]},
			},
		},
	}
	// ReservationsColumns holds the columns for the "reservations" table.
	ReservationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "supervisor_id", Type: field.TypeString, Nullable: true},
		{Name: "surface_requested", Type: field.TypeFloat64},
		{Name: "start_requested", Type: field.TypeTime},
		{Name: "end_requested", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "APPROVED", "REJECTED"}, Default: "PENDING"},
		{Name: "decision_date", Type: field.TypeTime, Nullable: true},
		{Name: "motivation", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "field_id", Type: field.TypeString},
		{Name: "client_id", Type: field.TypeString},
	}
	// ReservationsTable holds the schema information for the "reservations" table.
	ReservationsTable = &schema.Table{
		Name:       "reservations",
		Columns:    ReservationsColumns,
		PrimaryKey: []*schema.Column{ReservationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reservations_fields_reservations",
				Columns:    []*schema.Column{ReservationsColumns[10]},
				RefColumns: []*schema.Column{FieldsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "reservations_users_reservations",
				Columns:    []*schema.Column{ReservationsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reservation_field_id_status",
				Unique:  false,
				Columns: []*schema.Column{ReservationsColumns[10], ReservationsColumns[7]},
			},
			{
				Name:    "reservation_client_id",
				Unique:  false,
				Columns: []*schema.Column{ReservationsColumns[11]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "full_name", Type: field.TypeString, Nullable: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"ADMIN", "SUPERVISOR", "CLIENT"}, Default: "CLIENT"},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityTypesTable,
		AuditLogsTable,
		FieldsTable,
		NotificationsTable,
		ProjectsTable,
		ReservationsTable,
		UsersTable,
	}
)

func init() {
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	ProjectsTable.ForeignKeys[0].RefTable = ActivityTypesTable
	ProjectsTable.ForeignKeys[1].RefTable = FieldsTable
	ProjectsTable.ForeignKeys[2].RefTable = ReservationsTable
	ProjectsTable.ForeignKeys[3].RefTable = UsersTable
	ProjectsTable.ForeignKeys[4].RefTable = UsersTable
	ReservationsTable.ForeignKeys[0].RefTable = FieldsTable
	ReservationsTable.ForeignKeys[1].RefTable = UsersTable
}

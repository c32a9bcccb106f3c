package store

const (
	postgresColumns = `SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = $1
		ORDER BY ordinal_position;`

	sqliteColumns = `SELECT name FROM pragma_table_info(?) ORDER BY cid;`

	createSyncStateTable = `CREATE TABLE IF NOT EXISTS %s (
			tab VARCHAR(255) NOT NULL,
			uid_foreign BIGINT NOT NULL DEFAULT 0,
			full_sync BIGINT NOT NULL DEFAULT 0,
			incr_sync BIGINT NOT NULL DEFAULT 0,
			cruser_id BIGINT NOT NULL DEFAULT 0,
			PRIMARY KEY (tab, uid_foreign)
		);`

	upsertSyncStateSuffix = `ON CONFLICT (tab, uid_foreign) DO UPDATE SET %[1]s = EXCLUDED.%[1]s, cruser_id = EXCLUDED.cruser_id`

	upsertRegistrySuffix = `ON CONFLICT (namespace, entry_key) DO UPDATE SET entry_value = EXCLUDED.entry_value`

	upsertSessionSuffix = `ON CONFLICT (session_id, session_key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
)

// Tables owned by the sync service.
const (
	registryTable = "tx_nrsync_registry"
	sessionTable  = "tx_nrsync_session"
)

var pageColumns = []string{"uid", "pid", "doktype", "deleted", "perms_userid", "perms_everybody", "is_siteroot"}

var syncStateColumns = []string{"tab", "uid_foreign", "full_sync", "incr_sync", "cruser_id"}

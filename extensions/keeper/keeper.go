// Package keeper defines the messages of the keeper extension, which lets
// permissionless keepers run a vault's registered maintenance jobs.
package keeper

import "encoding/json"

type ExecuteMsg struct {
	// ExecuteJob runs a registered keeper job.
	ExecuteJob *ExecuteJob `json:"execute_job,omitempty"`
}

type ExecuteJob struct {
	JobID uint64 `json:"job_id"`
}

type QueryMsg struct {
	// Jobs returns the registered keeper jobs, paginated by job id.
	Jobs *Jobs `json:"jobs,omitempty"`
	// Job returns a single job by id.
	Job *JobQuery `json:"job,omitempty"`
}

type Jobs struct {
	StartAfter *uint64 `json:"start_after"`
	Limit      *uint32 `json:"limit"`
}

type JobQuery struct {
	JobID uint64 `json:"job_id"`
}

// Job is the response for QueryMsg.Job and the element type for
// QueryMsg.Jobs.
type Job struct {
	ID          uint64 `json:"id"`
	Description string `json:"description"`
}

func UnmarshalExecuteMsg(data []byte) (ExecuteMsg, error) {
	var r ExecuteMsg
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *ExecuteMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func UnmarshalQueryMsg(data []byte) (QueryMsg, error) {
	var r QueryMsg
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *QueryMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Package status models the wsrep status variables fetched from a node.
// Raw values are resolved into tagged numeric/text Values exactly once, at
// the point they leave the database layer.
package status

import (
	"fmt"
	"sort"
	"strings"
)

// Status variable names consumed by the checks.
const (
	VarClusterSize       = "wsrep_cluster_size"
	VarClusterStatus     = "wsrep_cluster_status"
	VarClusterStateUUID  = "wsrep_cluster_state_uuid"
	VarClusterConfID     = "wsrep_cluster_conf_id"
	VarReady             = "wsrep_ready"
	VarConnected         = "wsrep_connected"
	VarLocalStateComment = "wsrep_local_state_comment"
	VarLocalRecvQueueAvg = "wsrep_local_recv_queue_avg"
	VarFlowControlPaused = "wsrep_flow_control_paused"
	VarLocalSendQueueAvg = "wsrep_local_send_queue_avg"
)

// Required lists every variable the checks assume is present. A fetch that
// comes back without one of these is an environment error, not a verdict.
var Required = []string{
	VarClusterSize,
	VarClusterStatus,
	VarClusterStateUUID,
	VarClusterConfID,
	VarReady,
	VarConnected,
	VarLocalStateComment,
	VarLocalRecvQueueAvg,
	VarFlowControlPaused,
	VarLocalSendQueueAvg,
}

// Status is one fetched set of wsrep variables, parsed into tagged values.
type Status map[string]Value

// FromRaw parses the raw name→string map returned by the database layer.
func FromRaw(raw map[string]string) Status {
	st := make(Status, len(raw))
	for name, v := range raw {
		st[name] = Parse(v)
	}
	return st
}

// Require returns an error naming every missing variable, or nil when all
// are present.
func (s Status) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := s[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("status variables missing from node response: %s", strings.Join(missing, ", "))
}

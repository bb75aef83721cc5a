// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package remote runs commands on remote hosts over SSH.
package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
	"k8s.io/utils/ptr"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

const (
	// DefaultMaxRetries is the default number of connection attempts.
	DefaultMaxRetries = 3
	// DefaultRetryDelay is the default delay between two connection attempts.
	DefaultRetryDelay = time.Second
)

// Options configure the connection of an SSHNode.
type Options struct {
	// KnownHostsFile enables host key verification. Host keys are not verified if it is empty.
	KnownHostsFile string
	// ConnectTimeout is the timeout of a single connection attempt.
	ConnectTimeout time.Duration
	// MaxRetries is the number of connection attempts.
	MaxRetries int
	// RetryDelay is the delay between two connection attempts.
	RetryDelay time.Duration
	// WaitOptions are passed to the waits of the node, e.g. to record metrics.
	WaitOptions []wait.Option
}

// SSHNode is a host commands can be run on.
type SSHNode struct {
	// Name is the name of the host, e.g. the name of the storage server it is.
	Name string

	log    logr.Logger
	addr   string
	config *ssh.ClientConfig
	opts   Options
}

// NewSSHNode creates a node that authenticates as user with the key in privateKeyFile.
func NewSSHNode(log logr.Logger, name, user, addr string, port int, privateKeyFile string, opts Options) (*SSHNode, error) {
	privateKey, err := os.ReadFile(privateKeyFile)
	if err != nil {
		return nil, fmt.Errorf("could not read private key: %w", err)
	}
	signer, err := ssh.ParsePrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("could not parse private key %s: %w", privateKeyFile, err)
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey() // #nosec G106 -- only used if no known_hosts file is configured
	if opts.KnownHostsFile != "" {
		if hostKeyCallback, err = knownhosts.New(opts.KnownHostsFile); err != nil {
			return nil, fmt.Errorf("could not read known hosts: %w", err)
		}
	}

	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}

	return &SSHNode{
		Name: name,
		log:  log.WithName("ssh").WithValues("node", name),
		addr: net.JoinHostPort(addr, strconv.Itoa(port)),
		config: &ssh.ClientConfig{
			User:            user,
			Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
			HostKeyCallback: hostKeyCallback,
			Timeout:         opts.ConnectTimeout,
		},
		opts: opts,
	}, nil
}

// NewSSHNodeFromConfig creates a node for the host with the given name of the SSH configuration.
func NewSSHNodeFromConfig(log logr.Logger, cfg *config.SSH, name string, waitOpts ...wait.Option) (*SSHNode, error) {
	host, ok := cfg.Host(name)
	if !ok {
		return nil, fmt.Errorf("host %q is not configured", name)
	}

	opts := Options{
		KnownHostsFile: cfg.KnownHostsFile,
		MaxRetries:     ptr.Deref(cfg.MaxRetries, DefaultMaxRetries),
		WaitOptions:    waitOpts,
	}
	if cfg.ConnectTimeout != nil {
		opts.ConnectTimeout = cfg.ConnectTimeout.Duration
	}
	if cfg.RetryDelay != nil {
		opts.RetryDelay = cfg.RetryDelay.Duration
	}
	return NewSSHNode(log, host.Name, cfg.User, host.Address, ptr.Deref(cfg.Port, config.DefaultSSHPort), cfg.PrivateKeyFile, opts)
}

// Address returns host:port of the node.
func (n *SSHNode) Address() string {
	return n.addr
}

func (n *SSHNode) dial(ctx context.Context) (*ssh.Client, error) {
	dialer := &net.Dialer{Timeout: n.config.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", n.addr)
	if err != nil {
		return nil, err
	}

	// the handshake is bounded by the connect timeout and by ctx
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()
	if n.config.Timeout > 0 {
		if err := conn.SetDeadline(time.Now().Add(n.config.Timeout)); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	c, chans, reqs, err := ssh.NewClientConn(conn, n.addr, n.config)
	if err != nil {
		_ = conn.Close()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("ssh handshake with %s failed: %w", n.addr, err)
	}
	if !stop() {
		_ = c.Close()
		return nil, ctx.Err()
	}
	if err := conn.SetDeadline(time.Time{}); err != nil {
		_ = c.Close()
		return nil, err
	}
	return ssh.NewClient(c, chans, reqs), nil
}

// connect dials the node until it succeeds or MaxRetries attempts failed.
func (n *SSHNode) connect(ctx context.Context) (*ssh.Client, error) {
	var (
		client   *ssh.Client
		lastErr  error
		attempts int
	)

	policy := wait.Policy{
		Timeout:      time.Duration(n.opts.MaxRetries) * n.opts.RetryDelay,
		PollInterval: n.opts.RetryDelay,
	}
	ok, err := wait.Until(ctx, n.log, policy, "ssh connection to "+n.addr, func() (bool, error) {
		attempts++
		client, lastErr = n.dial(ctx)
		if lastErr == nil {
			return true, nil
		}
		n.log.V(1).Info("Could not connect", "attempt", attempts, "error", lastErr.Error())
		if attempts >= n.opts.MaxRetries {
			return false, lastErr
		}
		return false, nil
	}, n.opts.WaitOptions...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to %s: %w", n.addr, err)
	}
	if !ok {
		return nil, fmt.Errorf("could not connect to %s after %d attempts: %w", n.addr, attempts, lastErr)
	}
	return client, nil
}

// RunCommand runs cmd on the node. A non-zero exit code is returned as *ExitError together with the output.
func (n *SSHNode) RunCommand(ctx context.Context, cmd string) (*CommandOut, error) {
	client, err := n.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return nil, fmt.Errorf("could not open session on %s: %w", n.addr, err)
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	n.log.V(1).Info("Running command", "command", cmd)
	done := make(chan error, 1)
	go func() {
		done <- session.Run(cmd)
	}()

	select {
	case <-ctx.Done():
		_ = session.Signal(ssh.SIGKILL)
		_ = client.Close()
		return nil, ctx.Err()
	case err = <-done:
	}

	out := &CommandOut{StdOut: stdout.String(), StdErr: stderr.String()}
	if err != nil {
		var exitErr *ssh.ExitError
		if !errors.As(err, &exitErr) {
			return out, fmt.Errorf("could not run %q on %s: %w", cmd, n.addr, err)
		}
		out.ExitCode = exitErr.ExitStatus()
		return out, &ExitError{Command: cmd, Out: out}
	}
	return out, nil
}

// RunCommandWithOutput runs cmd and returns its trimmed standard output.
func (n *SSHNode) RunCommandWithOutput(ctx context.Context, cmd string) (string, error) {
	out, err := n.RunCommand(ctx, cmd)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out.StdOut), nil
}

// Checksum returns the md5 checksum of the file at path.
func (n *SSHNode) Checksum(ctx context.Context, path string) (string, error) {
	output, err := n.RunCommandWithOutput(ctx, "md5sum "+shellQuote(path))
	if err != nil {
		return "", err
	}
	fields := strings.Fields(output)
	if len(fields) == 0 {
		return "", fmt.Errorf("unexpected md5sum output %q", output)
	}
	return fields[0], nil
}

// WriteRandomFile writes sizeMB megabytes of random data to path and syncs it to disk.
func (n *SSHNode) WriteRandomFile(ctx context.Context, path string, sizeMB int) error {
	_, err := n.RunCommand(ctx, fmt.Sprintf("dd if=/dev/urandom of=%s bs=1M count=%d && sync", shellQuote(path), sizeMB))
	return err
}

// StopService stops a systemd unit, e.g. ceph-osd@3.
func (n *SSHNode) StopService(ctx context.Context, unit string) error {
	_, err := n.RunCommand(ctx, "sudo systemctl stop "+shellQuote(unit))
	return err
}

// StartService starts a systemd unit.
func (n *SSHNode) StartService(ctx context.Context, unit string) error {
	_, err := n.RunCommand(ctx, "sudo systemctl start "+shellQuote(unit))
	return err
}

// WaitForReachable waits until a connection to the node can be established, e.g. after a server was booted.
func (n *SSHNode) WaitForReachable(ctx context.Context, policy wait.Policy) error {
	return wait.RequireCondition(ctx, n.log, policy, fmt.Sprintf("node %s to be reachable via ssh", n.Name), func() (bool, error) {
		client, err := n.dial(ctx)
		if err != nil {
			n.log.V(1).Info("Node not reachable yet", "error", err.Error())
			return false, nil
		}
		if err := client.Close(); err != nil {
			n.log.V(1).Info("Could not close connection", "error", err.Error())
		}
		return true, nil
	}, n.opts.WaitOptions...)
}

// shellQuote quotes s for a POSIX shell.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

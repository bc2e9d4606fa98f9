// Command relay is a demonstration two-role UDP-through-TCP bridge: an
// ingress process accepts UDP traffic and forwards it as length-prefixed
// frames over TCP; an egress process accepts those frames and re-emits
// them as UDP to a fixed upstream peer.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"

	"udpflow"
	"udpflow/internal/flog"
	"udpflow/uot"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "relay",
		Short: "UDP-over-TCP relay demo",
	}
	root.AddCommand(serveCmd())
	return root
}

func serveCmd() *cobra.Command {
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run as the configured role (ingress or egress) until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := flog.Info
			if verbose {
				level = flog.Debug
			}
			flog.SetLevel(level)

			conf, err := LoadFromFile(configPath)
			if err != nil {
				return err
			}
			udpflow.SetTimeout(conf.Timeout())

			switch conf.Role {
			case "ingress":
				return runIngress(conf)
			case "egress":
				return runEgress(conf)
			default:
				return fmt.Errorf("unknown role %q", conf.Role)
			}
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "relay.yaml", "path to relay config")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// runIngress accepts UDP datagrams on conf.Listen and, for each new peer
// session, dials conf.Upstream over TCP and bridges the two as UoT frames.
func runIngress(conf *Conf) error {
	l, err := udpflow.Listen("udp", conf.Listen)
	if err != nil {
		return fmt.Errorf("ingress listen: %w", err)
	}
	defer l.Close()
	flog.Infof("ingress: listening on %s, forwarding to %s", l.Addr(), conf.Upstream)

	scratch := make([]byte, 65507)
	for {
		local, peer, err := l.Accept(scratch)
		if err != nil {
			return fmt.Errorf("ingress accept: %w", err)
		}
		flog.Infof("ingress: new session from %s", peer)

		go func() {
			defer local.Close()

			conn, err := net.Dial("tcp", conf.Upstream)
			if err != nil {
				flog.Errorf("ingress: dial %s: %v", conf.Upstream, err)
				return
			}
			stream := uot.NewStream(conn)
			defer stream.Close()

			if _, _, err := udpflow.Bridge(local, stream); err != nil {
				flog.Debugf("ingress: session %s ended: %v", peer, err)
			}
		}()
	}
}

// runEgress accepts UoT-framed TCP connections on conf.Listen and, for
// each, dials conf.Upstream over UDP and bridges the two.
func runEgress(conf *Conf) error {
	ln, err := net.Listen("tcp", conf.Listen)
	if err != nil {
		return fmt.Errorf("egress listen: %w", err)
	}
	defer ln.Close()
	flog.Infof("egress: listening on %s, forwarding to %s", ln.Addr(), conf.Upstream)

	for {
		conn, err := ln.Accept()
		if err != nil {
			return fmt.Errorf("egress accept: %w", err)
		}
		flog.Infof("egress: new connection from %s", conn.RemoteAddr())

		go func() {
			stream := uot.NewStream(conn)
			defer stream.Close()

			remote, err := udpflow.DialRemote("udp", conf.Upstream)
			if err != nil {
				flog.Errorf("egress: dial %s: %v", conf.Upstream, err)
				return
			}
			defer remote.Close()

			if _, _, err := udpflow.Bridge(stream, remote); err != nil {
				flog.Debugf("egress: connection from %s ended: %v", conn.RemoteAddr(), err)
			}
		}()
	}
}
